package service

import (
	"context"
	"encoding/json"
	"errors"

	"uecc_backend/internals/features/inscriptions/inscription/dto"
	iModel "uecc_backend/internals/features/inscriptions/inscription/model"
)

var (
	ErrSessionInconnue = errors.New("session de formulaire inconnue")
	ErrPaiementRequis  = errors.New("le paiement des frais de badge est requis pour finaliser")
	ErrEtapeFinale     = errors.New("la soumission n'est possible qu'à la dernière étape")
)

// Wizard porte l'état d'une saisie en cours: pointeur d'étape, valeurs déjà
// saisies, indicateur de paiement. Rien n'est persisté avant Submit.
type Wizard struct {
	ID         string              `json:"id"`
	Step       int                 `json:"step"`
	Form       dto.InscriptionForm `json:"form"`
	Paid       bool                `json:"paid"`
	PaymentRef string              `json:"paymentRef,omitempty"`
	OrderID    string              `json:"orderId,omitempty"`
}

func (w *Wizard) IsFirst() bool { return w.Step == 1 }
func (w *Wizard) IsLast() bool  { return w.Step == TotalSteps }

// Creator est la partie du store dont le wizard a besoin: unicité d'email et
// création finale. Interface pour rester testable sans persistance réelle.
type Creator interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, form *dto.InscriptionForm) (iModel.InscriptionModel, error)
}

// WizardService applique les transitions d'étape sur les sessions.
type WizardService struct {
	repo     Creator
	sessions *WizardStore
}

func NewWizardService(repo Creator, sessions *WizardStore) *WizardService {
	return &WizardService{repo: repo, sessions: sessions}
}

// Start ouvre une session à l'étape 1, formulaire vide.
func (s *WizardService) Start() *Wizard {
	return s.sessions.New()
}

// Get retrouve une session par id.
func (s *WizardService) Get(id string) (*Wizard, error) {
	w, ok := s.sessions.Find(id)
	if !ok {
		return nil, ErrSessionInconnue
	}
	return w, nil
}

// Next fusionne la charge utile dans l'étape courante puis tente d'avancer.
// La validation syntaxique passe d'abord; le contrôle d'unicité de l'email
// (étape 1 uniquement) ne s'exécute qu'ensuite, pour ne pas masquer les
// erreurs simples. En cas d'échec le pointeur d'étape ne bouge pas.
func (s *WizardService) Next(ctx context.Context, id string, payload json.RawMessage) (*Wizard, map[string][]string, error) {
	w, ok := s.sessions.Find(id)
	if !ok {
		return nil, nil, ErrSessionInconnue
	}

	if err := mergeStep(w, payload); err != nil {
		return w, map[string][]string{"_global": {"Corps de requête invalide."}}, nil
	}

	fieldErrors, err := ValidateStep(w.Step, &w.Form)
	if err != nil {
		return w, nil, err
	}
	if len(fieldErrors) == 0 && w.Step == 1 {
		exists, err := s.repo.EmailExists(ctx, w.Form.Email)
		if err != nil {
			return w, nil, err
		}
		if exists {
			fieldErrors["email"] = []string{"Cet email est déjà utilisé."}
		}
	}
	if len(fieldErrors) > 0 {
		s.sessions.Save(w)
		return w, fieldErrors, nil
	}

	if !w.IsLast() {
		w.Step++
	}
	s.sessions.Save(w)
	return w, nil, nil
}

// Previous recule d'une étape sans valider; les valeurs saisies sont
// conservées telles quelles.
func (s *WizardService) Previous(id string) (*Wizard, error) {
	w, ok := s.sessions.Find(id)
	if !ok {
		return nil, ErrSessionInconnue
	}
	if !w.IsFirst() {
		w.Step--
	}
	s.sessions.Save(w)
	return w, nil
}

// SetPhoto attache la photo traitée aux valeurs de la session.
func (s *WizardService) SetPhoto(id, dataURL string) (*Wizard, error) {
	w, ok := s.sessions.Find(id)
	if !ok {
		return nil, ErrSessionInconnue
	}
	w.Form.PhotoUrl = dataURL
	s.sessions.Save(w)
	return w, nil
}

// AttachOrder mémorise l'ordre de paiement émis pour cette session, pour que
// le webhook puisse retrouver la session depuis l'order id.
func (s *WizardService) AttachOrder(id, orderID string) error {
	w, ok := s.sessions.Find(id)
	if !ok {
		return ErrSessionInconnue
	}
	w.OrderID = orderID
	s.sessions.Save(w)
	return nil
}

// MarkPaid est la cible du callback de succès du collaborateur de paiement.
// Seul l'indicateur local et la référence sont consommés de la réponse.
func (s *WizardService) MarkPaid(id, reference string) (*Wizard, error) {
	w, ok := s.sessions.Find(id)
	if !ok {
		return nil, ErrSessionInconnue
	}
	w.Paid = true
	w.PaymentRef = reference
	if w.Form.ReferencePaiement == "" {
		w.Form.ReferencePaiement = reference
	}
	s.sessions.Save(w)
	return w, nil
}

// MarkPaidByOrder retrouve la session par order id (chemin webhook).
func (s *WizardService) MarkPaidByOrder(orderID, reference string) (*Wizard, error) {
	id, ok := s.sessions.FindByOrder(orderID)
	if !ok {
		return nil, ErrSessionInconnue
	}
	return s.MarkPaid(id, reference)
}

// Submit n'est atteignable qu'à la dernière étape, paiement confirmé. Le
// formulaire complet est revalidé défensivement: l'indicateur de paiement et
// la validité du formulaire sont suivis séparément et peuvent se désynchroniser.
func (s *WizardService) Submit(ctx context.Context, id string) (iModel.InscriptionModel, map[string][]string, error) {
	w, ok := s.sessions.Find(id)
	if !ok {
		return iModel.InscriptionModel{}, nil, ErrSessionInconnue
	}
	if !w.IsLast() {
		return iModel.InscriptionModel{}, nil, ErrEtapeFinale
	}
	if !w.Paid {
		return iModel.InscriptionModel{}, nil, ErrPaiementRequis
	}

	if fieldErrors := ValidateFull(&w.Form); len(fieldErrors) > 0 {
		return iModel.InscriptionModel{}, fieldErrors, nil
	}
	// dernier filet: l'email a pu être pris entre l'étape 1 et la soumission
	if exists, err := s.repo.EmailExists(ctx, w.Form.Email); err != nil {
		return iModel.InscriptionModel{}, nil, err
	} else if exists {
		return iModel.InscriptionModel{}, map[string][]string{"email": {"Cet email est déjà utilisé."}}, nil
	}

	rec, err := s.repo.Create(ctx, &w.Form)
	if err != nil {
		return iModel.InscriptionModel{}, nil, err
	}
	s.sessions.Remove(w.ID)
	return rec, nil, nil
}

// mergeStep décode la charge utile dans la vue de l'étape courante puis la
// normalise. Les champs des autres étapes ne sont jamais touchés.
func mergeStep(w *Wizard, payload json.RawMessage) error {
	if len(payload) == 0 {
		return nil
	}
	switch w.Step {
	case 1:
		if err := json.Unmarshal(payload, &w.Form.Step1Identite); err != nil {
			return err
		}
		w.Form.Step1Identite.Normalize()
	case 2:
		if err := json.Unmarshal(payload, &w.Form.Step2Parcours); err != nil {
			return err
		}
		w.Form.Step2Parcours.Normalize()
	case 3:
		if err := json.Unmarshal(payload, &w.Form.Step3Engagement); err != nil {
			return err
		}
		w.Form.Step3Engagement.Normalize()
	case 4:
		if err := json.Unmarshal(payload, &w.Form.Step4Activites); err != nil {
			return err
		}
		w.Form.Step4Activites.Normalize()
	case 5:
		// la photo est posée par SetPhoto; on préserve sa valeur si la charge
		// utile ne la mentionne pas
		photo := w.Form.PhotoUrl
		if err := json.Unmarshal(payload, &w.Form.Step5Finalisation); err != nil {
			return err
		}
		if w.Form.PhotoUrl == "" {
			w.Form.PhotoUrl = photo
		}
		w.Form.Step5Finalisation.Normalize()
	}
	return nil
}
