package dto

import (
	"strings"

	iModel "uecc_backend/internals/features/inscriptions/inscription/model"
)

/* =======================================================
   FORMULAIRE PAR ÉTAPE
   Chaque étape ne déclare (et ne valide) que ses champs.
   ======================================================= */

// Step1Identite — identité et contact
type Step1Identite struct {
	Email             string `json:"email" validate:"required,email,max=255"`
	Nom               string `json:"nom" validate:"required,min=2,max=100"`
	Prenoms           string `json:"prenoms" validate:"required,min=2,max=150"`
	Telephone         string `json:"telephone" validate:"required,telephone_bj"`
	CelluleProvenance string `json:"celluleProvenance" validate:"required,min=2,max=100"`
}

func (s *Step1Identite) Normalize() {
	s.Email = strings.TrimSpace(strings.ToLower(s.Email))
	s.Nom = strings.TrimSpace(s.Nom)
	s.Prenoms = strings.TrimSpace(s.Prenoms)
	s.Telephone = strings.TrimSpace(s.Telephone)
	s.CelluleProvenance = strings.TrimSpace(s.CelluleProvenance)
}

// Step2Parcours — parcours universitaire
type Step2Parcours struct {
	Universite string `json:"universite" validate:"required,min=2,max=200"`
	Filiere    string `json:"filiere" validate:"required,min=2,max=100"`
	AnneeEtude string `json:"anneeEtude" validate:"required"`
	Matricule  string `json:"matricule" validate:"required,max=50"`
	Profession string `json:"profession,omitempty" validate:"omitempty,max=100"`
}

func (s *Step2Parcours) Normalize() {
	s.Universite = strings.TrimSpace(s.Universite)
	s.Filiere = strings.TrimSpace(s.Filiere)
	s.AnneeEtude = strings.TrimSpace(s.AnneeEtude)
	s.Matricule = strings.TrimSpace(s.Matricule)
	s.Profession = strings.TrimSpace(s.Profession)
}

// Step3Engagement — engagement paroissial
type Step3Engagement struct {
	SituationMatrimoniale    string `json:"situationMatrimoniale" validate:"required"`
	GradeEglise              string `json:"gradeEglise" validate:"required"`
	ParoisseOrigine          string `json:"paroisseOrigine" validate:"required,min=2,max=150"`
	ChargeParoisseOrigine    string `json:"chargeParoisseOrigine" validate:"required,min=2,max=100"`
	ParoisseAccueil          string `json:"paroisseAccueil" validate:"required,min=2,max=150"`
	ChargeParoisseAccueil    string `json:"chargeParoisseAccueil" validate:"required,min=2,max=100"`
	AnneeDecouverteUECC      string `json:"anneeDecouverteUECC" validate:"required,annee4"`
	CelluleUECCMilite        string `json:"celluleUECCMilite" validate:"required,min=2,max=100"`
	ResponsableCelluleEpoque string `json:"responsableCelluleEpoque" validate:"required,min=2,max=100"`
	PosteOccupeUECC          string `json:"posteOccupeUECC" validate:"required,min=2,max=100"`
	ResponsableActuelCellule string `json:"responsableActuelCellule" validate:"required,min=2,max=100"`
}

func (s *Step3Engagement) Normalize() {
	s.SituationMatrimoniale = strings.TrimSpace(s.SituationMatrimoniale)
	s.GradeEglise = strings.TrimSpace(s.GradeEglise)
	s.ParoisseOrigine = strings.TrimSpace(s.ParoisseOrigine)
	s.ChargeParoisseOrigine = strings.TrimSpace(s.ChargeParoisseOrigine)
	s.ParoisseAccueil = strings.TrimSpace(s.ParoisseAccueil)
	s.ChargeParoisseAccueil = strings.TrimSpace(s.ChargeParoisseAccueil)
	s.AnneeDecouverteUECC = strings.TrimSpace(s.AnneeDecouverteUECC)
	s.CelluleUECCMilite = strings.TrimSpace(s.CelluleUECCMilite)
	s.ResponsableCelluleEpoque = strings.TrimSpace(s.ResponsableCelluleEpoque)
	s.PosteOccupeUECC = strings.TrimSpace(s.PosteOccupeUECC)
	s.ResponsableActuelCellule = strings.TrimSpace(s.ResponsableActuelCellule)
}

// ChoristeForm — variante présente uniquement quand estChoriste = true
type ChoristeForm struct {
	Role                   string `json:"roleChoriste" validate:"omitempty,max=100"`
	MaitreChoeur           string `json:"maitreChoeur" validate:"omitempty,max=100"`
	ConnaissanceChoeurUECC bool   `json:"connaissanceUECCChoir"`
	InteresseIntegrer      bool   `json:"interesseIntegrer"`
}

// Step4Activites — activités et chorale. Les villes/pays de paroisse restent
// optionnels comme sur le formulaire.
type Step4Activites struct {
	DerniereActiviteUECC string        `json:"derniereActiviteUECC" validate:"required,min=2,max=200"`
	AnneeActivite        string        `json:"anneeActivite" validate:"required,annee4"`
	Superviseur          string        `json:"superviseur" validate:"required,min=2,max=100"`
	PresidentComite      string        `json:"presidentComite" validate:"required,min=2,max=100"`
	ParoisseOrigineVille string        `json:"paroisseOrigineVille,omitempty" validate:"omitempty,max=100"`
	ParoisseOriginePays  string        `json:"paroisseOriginePays,omitempty" validate:"omitempty,max=100"`
	ParoisseAccueilVille string        `json:"paroisseAccueilVille,omitempty" validate:"omitempty,max=100"`
	ParoisseAccueilPays  string        `json:"paroisseAccueilPays,omitempty" validate:"omitempty,max=100"`
	EstChoriste          bool          `json:"estChoriste"`
	Choriste             *ChoristeForm `json:"choriste,omitempty" validate:"required_if=EstChoriste true,omitempty"`
}

func (s *Step4Activites) Normalize() {
	s.DerniereActiviteUECC = strings.TrimSpace(s.DerniereActiviteUECC)
	s.AnneeActivite = strings.TrimSpace(s.AnneeActivite)
	s.Superviseur = strings.TrimSpace(s.Superviseur)
	s.PresidentComite = strings.TrimSpace(s.PresidentComite)
	s.ParoisseOrigineVille = strings.TrimSpace(s.ParoisseOrigineVille)
	s.ParoisseOriginePays = strings.TrimSpace(s.ParoisseOriginePays)
	s.ParoisseAccueilVille = strings.TrimSpace(s.ParoisseAccueilVille)
	s.ParoisseAccueilPays = strings.TrimSpace(s.ParoisseAccueilPays)
	if !s.EstChoriste {
		// un non-choriste ne porte pas de profil choriste
		s.Choriste = nil
	} else if s.Choriste != nil {
		s.Choriste.Role = strings.TrimSpace(s.Choriste.Role)
		s.Choriste.MaitreChoeur = strings.TrimSpace(s.Choriste.MaitreChoeur)
	}
}

// Step5Finalisation — photo, paiement, certification.
// La certification doit valoir exactement true, pas simplement "truthy".
type Step5Finalisation struct {
	PhotoUrl                string `json:"photoUrl" validate:"required"`
	ReferencePaiement       string `json:"referencePaiement,omitempty" validate:"omitempty,max=100"`
	CertificationExactitude bool   `json:"certificationExactitude" validate:"eq=true"`
}

func (s *Step5Finalisation) Normalize() {
	s.ReferencePaiement = strings.TrimSpace(s.ReferencePaiement)
}

/* =======================================================
   FORMULAIRE COMPLET
   ======================================================= */

// InscriptionForm est l'union des cinq étapes: l'état en cours de saisie du
// wizard. Les structs embarqués gardent leurs clés JSON à plat.
type InscriptionForm struct {
	Step1Identite
	Step2Parcours
	Step3Engagement
	Step4Activites
	Step5Finalisation
}

func (f *InscriptionForm) Normalize() {
	f.Step1Identite.Normalize()
	f.Step2Parcours.Normalize()
	f.Step3Engagement.Normalize()
	f.Step4Activites.Normalize()
	f.Step5Finalisation.Normalize()
}

// ToModel construit le dossier à persister. Les métadonnées (id, numéro,
// date, statut) restent à la charge du repository.
func (f *InscriptionForm) ToModel() *iModel.InscriptionModel {
	m := &iModel.InscriptionModel{
		Email:             f.Email,
		Nom:               f.Nom,
		Prenoms:           f.Prenoms,
		Telephone:         f.Telephone,
		CelluleProvenance: f.CelluleProvenance,

		Universite: f.Universite,
		Filiere:    f.Filiere,
		AnneeEtude: f.AnneeEtude,
		Matricule:  f.Matricule,
		Profession: f.Profession,

		SituationMatrimoniale:    f.SituationMatrimoniale,
		GradeEglise:              f.GradeEglise,
		ParoisseOrigine:          f.ParoisseOrigine,
		ChargeParoisseOrigine:    f.ChargeParoisseOrigine,
		ParoisseAccueil:          f.ParoisseAccueil,
		ChargeParoisseAccueil:    f.ChargeParoisseAccueil,
		AnneeDecouverteUECC:      f.AnneeDecouverteUECC,
		CelluleUECCMilite:        f.CelluleUECCMilite,
		ResponsableCelluleEpoque: f.ResponsableCelluleEpoque,
		PosteOccupeUECC:          f.PosteOccupeUECC,
		ResponsableActuelCellule: f.ResponsableActuelCellule,

		DerniereActiviteUECC: f.DerniereActiviteUECC,
		AnneeActivite:        f.AnneeActivite,
		Superviseur:          f.Superviseur,
		PresidentComite:      f.PresidentComite,
		ParoisseOrigineVille: f.ParoisseOrigineVille,
		ParoisseOriginePays:  f.ParoisseOriginePays,
		ParoisseAccueilVille: f.ParoisseAccueilVille,
		ParoisseAccueilPays:  f.ParoisseAccueilPays,
		EstChoriste:          f.EstChoriste,

		PhotoUrl:                f.PhotoUrl,
		ReferencePaiement:       f.ReferencePaiement,
		CertificationExactitude: f.CertificationExactitude,
	}
	if f.EstChoriste && f.Choriste != nil {
		m.Choriste = &iModel.ProfilChoriste{
			Role:                   f.Choriste.Role,
			MaitreChoeur:           f.Choriste.MaitreChoeur,
			ConnaissanceChoeurUECC: f.Choriste.ConnaissanceChoeurUECC,
			InteresseIntegrer:      f.Choriste.InteresseIntegrer,
		}
	}
	return m
}
