package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"uecc_backend/internals/constants"
	"uecc_backend/internals/features/inscriptions/inscription/service"
	helper "uecc_backend/internals/helpers"
)

// WizardController expose le formulaire multi-étapes: ouverture de session,
// navigation, photo, paiement, soumission finale.
type WizardController struct {
	Wizard  *service.WizardService
	Sandbox bool
}

func NewWizardController(wizard *service.WizardService, sandbox bool) *WizardController {
	return &WizardController{Wizard: wizard, Sandbox: sandbox}
}

func wizardView(w *service.Wizard) fiber.Map {
	return fiber.Map{
		"id":         w.ID,
		"step":       w.Step,
		"totalSteps": service.TotalSteps,
		"isFirst":    w.IsFirst(),
		"isLast":     w.IsLast(),
		"paid":       w.Paid,
		"form":       w.Form,
	}
}

// 🟢 POST /api/inscriptions/wizard — ouvre une session de saisie
func (ctrl *WizardController) Start(c *fiber.Ctx) error {
	w := ctrl.Wizard.Start()
	return helper.JsonCreated(c, "Session de formulaire ouverte", wizardView(w))
}

// 🟢 GET /api/inscriptions/wizard/:id — état courant
func (ctrl *WizardController) Get(c *fiber.Ctx) error {
	w, err := ctrl.Wizard.Get(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
	}
	return helper.JsonOK(c, "", wizardView(w))
}

// 🟢 POST /api/inscriptions/wizard/:id/next — valide l'étape et avance
func (ctrl *WizardController) Next(c *fiber.Ctx) error {
	w, fieldErrors, err := ctrl.Wizard.Next(c.UserContext(), c.Params("id"), json.RawMessage(c.Body()))
	if err != nil {
		if errors.Is(err, service.ErrSessionInconnue) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Une erreur est survenue. Veuillez réessayer.")
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}
	return helper.JsonOK(c, "Étape validée", wizardView(w))
}

// 🟢 POST /api/inscriptions/wizard/:id/previous — recule sans valider
func (ctrl *WizardController) Previous(c *fiber.Ctx) error {
	w, err := ctrl.Wizard.Previous(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
	}
	return helper.JsonOK(c, "", wizardView(w))
}

// 🟢 POST /api/inscriptions/wizard/:id/photo — upload et traitement du portrait
func (ctrl *WizardController) UploadPhoto(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil || file == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Photo obligatoire")
	}
	dataURL, err := service.ProcessPhoto(file)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	w, err := ctrl.Wizard.SetPhoto(c.Params("id"), dataURL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
	}
	return helper.JsonOK(c, "Photo prête pour le badge", wizardView(w))
}

// 🟢 POST /api/inscriptions/wizard/:id/paiement — crée la transaction des frais
func (ctrl *WizardController) CreatePayment(c *fiber.Ctx) error {
	w, err := ctrl.Wizard.Get(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
	}

	orderID := service.NewOrderID()
	token, err := service.CreateBadgeFeeTransaction(orderID, w.Form.Nom, w.Form.Prenoms, w.Form.Email)
	if err != nil {
		log.Printf("[ERROR] création transaction frais de badge: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Impossible de créer le paiement. Veuillez réessayer.")
	}
	if err := ctrl.Wizard.AttachOrder(w.ID, orderID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
	}

	return helper.JsonOK(c, "Paiement initialisé", fiber.Map{
		"order_id":   orderID,
		"snap_token": token,
		"montant":    constants.MontantFraisBadge,
	})
}

// 🟢 POST /api/inscriptions/paiement/webhook — notification du collaborateur
func (ctrl *WizardController) PaymentWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook invalide")
	}

	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] payload webhook incomplet:", body)
		return helper.JsonError(c, fiber.StatusBadRequest, "Webhook invalide")
	}

	if !service.PaymentSucceeded(status) {
		log.Printf("[INFO] statut de transaction ignoré: %s (ordre %s)", status, orderID)
		return helper.JsonOK(c, "Statut ignoré", nil)
	}

	reference, _ := body["transaction_id"].(string)
	if reference == "" {
		reference = orderID
	}
	if _, err := ctrl.Wizard.MarkPaidByOrder(orderID, reference); err != nil {
		log.Printf("[ERROR] ordre de paiement inconnu: %s", orderID)
		return helper.JsonError(c, fiber.StatusNotFound, "Ordre inconnu")
	}
	return helper.JsonOK(c, "Paiement validé", nil)
}

// 🟢 POST /api/inscriptions/wizard/:id/paiement/simulate — bac à sable uniquement
func (ctrl *WizardController) SimulatePayment(c *fiber.Ctx) error {
	if !ctrl.Sandbox {
		return helper.JsonError(c, fiber.StatusForbidden, "Simulation désactivée en production")
	}
	w, err := ctrl.Wizard.MarkPaid(c.Params("id"), "SIMULATION")
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
	}
	return helper.JsonOK(c, "Paiement validé. Vous pouvez maintenant finaliser votre inscription.", wizardView(w))
}

// 🟢 POST /api/inscriptions/wizard/:id/submit — soumission finale
func (ctrl *WizardController) Submit(c *fiber.Ctx) error {
	rec, fieldErrors, err := ctrl.Wizard.Submit(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionInconnue):
			return helper.JsonError(c, fiber.StatusNotFound, "Session introuvable")
		case errors.Is(err, service.ErrPaiementRequis):
			return helper.JsonError(c, fiber.StatusForbidden, "Paiement requis pour finaliser")
		case errors.Is(err, service.ErrEtapeFinale):
			return helper.JsonError(c, fiber.StatusConflict, "La soumission n'est possible qu'à la dernière étape")
		default:
			log.Printf("[ERROR] soumission: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Une erreur est survenue. Veuillez réessayer.")
		}
	}
	if len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	// charge utile de la page de confirmation
	return helper.JsonCreated(c, "✅ Inscription réussie !", fiber.Map{
		"numeroDossier": rec.NumeroDossier,
		"nom":           rec.Nom,
		"prenoms":       rec.Prenoms,
	})
}

// 🟢 GET /api/inscriptions/options — listes d'options du formulaire
func (ctrl *WizardController) Options(c *fiber.Ctx) error {
	return helper.JsonOK(c, "", fiber.Map{
		"anneesEtude":             constants.AnneesEtude,
		"situationsMatrimoniales": constants.SituationsMatrimoniales,
		"gradesEglise":            constants.GradesEglise,
		"cellules":                constants.Cellules,
		"montantFraisBadge":       constants.MontantFraisBadge,
	})
}
