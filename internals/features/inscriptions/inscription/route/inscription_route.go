package route

import (
	"github.com/gofiber/fiber/v2"

	inscriptionController "uecc_backend/internals/features/inscriptions/inscription/controller"
)

// InscriptionRoutes expose le parcours d'inscription public.
func InscriptionRoutes(api fiber.Router, ctrl *inscriptionController.WizardController) {
	api.Get("/options", ctrl.Options) // Listes d'options du formulaire

	wizard := api.Group("/wizard")
	wizard.Post("/", ctrl.Start)                            // Ouvrir une session
	wizard.Get("/:id", ctrl.Get)                            // État courant
	wizard.Post("/:id/next", ctrl.Next)                     // Valider l'étape + avancer
	wizard.Post("/:id/previous", ctrl.Previous)             // Reculer
	wizard.Post("/:id/photo", ctrl.UploadPhoto)             // Photo du badge
	wizard.Post("/:id/paiement", ctrl.CreatePayment)        // Initialiser le paiement
	wizard.Post("/:id/paiement/simulate", ctrl.SimulatePayment) // Succès simulé (sandbox)
	wizard.Post("/:id/submit", ctrl.Submit)                 // Soumission finale

	api.Post("/paiement/webhook", ctrl.PaymentWebhook) // Notification du gateway
}

// AdminRoutes expose le tableau de bord (déjà derrière le garde JWT).
func AdminRoutes(admin fiber.Router, ctrl *inscriptionController.AdminController) {
	admin.Get("/inscriptions", ctrl.List)
	admin.Get("/inscriptions/stats", ctrl.Stats)
	admin.Get("/inscriptions/export", ctrl.Export)
	admin.Patch("/inscriptions/:id/statut", ctrl.UpdateStatut)
	admin.Delete("/inscriptions/:id", ctrl.Delete)
	admin.Post("/logout", ctrl.Logout)
}
