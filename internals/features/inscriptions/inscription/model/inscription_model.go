package model

import (
	"time"
)

// ProfilChoriste regroupe les champs qui n'ont de sens que pour un choriste.
// Absent (nil) pour un non-choriste: l'invariant conditionnel est porté par la
// structure, pas par quatre champs optionnels indépendants.
type ProfilChoriste struct {
	Role                   string `json:"roleChoriste,omitempty"`
	MaitreChoeur           string `json:"maitreChoeur,omitempty"`
	ConnaissanceChoeurUECC bool   `json:"connaissanceUECCChoir"`
	InteresseIntegrer      bool   `json:"interesseIntegrer"`
}

// InscriptionModel est le dossier d'inscription complet tel que persisté dans
// le blob uecc_registrations. Les clés JSON reprennent celles du formulaire;
// tout ajout de champ doit rester toléré en lecture sur les anciens dossiers.
type InscriptionModel struct {
	// Métadonnées — assignées par le store, jamais par l'inscrit
	ID              string    `json:"id"`
	NumeroDossier   string    `json:"numeroDossier"`
	DateInscription time.Time `json:"dateInscription"`
	StatutPaiement  string    `json:"statutPaiement"`

	// Étape 1: Identité
	Email             string `json:"email"`
	Nom               string `json:"nom"`
	Prenoms           string `json:"prenoms"`
	Telephone         string `json:"telephone"`
	CelluleProvenance string `json:"celluleProvenance"`

	// Étape 2: Parcours universitaire
	Universite string `json:"universite"`
	Filiere    string `json:"filiere"`
	AnneeEtude string `json:"anneeEtude"`
	Matricule  string `json:"matricule"`
	Profession string `json:"profession,omitempty"`

	// Étape 3: Engagement paroissial
	SituationMatrimoniale    string `json:"situationMatrimoniale"`
	GradeEglise              string `json:"gradeEglise"`
	ParoisseOrigine          string `json:"paroisseOrigine"`
	ChargeParoisseOrigine    string `json:"chargeParoisseOrigine"`
	ParoisseAccueil          string `json:"paroisseAccueil"`
	ChargeParoisseAccueil    string `json:"chargeParoisseAccueil"`
	AnneeDecouverteUECC      string `json:"anneeDecouverteUECC"`
	CelluleUECCMilite        string `json:"celluleUECCMilite"`
	ResponsableCelluleEpoque string `json:"responsableCelluleEpoque"`
	PosteOccupeUECC          string `json:"posteOccupeUECC"`
	ResponsableActuelCellule string `json:"responsableActuelCellule"`

	// Étape 4: Activités & chorale
	DerniereActiviteUECC string          `json:"derniereActiviteUECC"`
	AnneeActivite        string          `json:"anneeActivite"`
	Superviseur          string          `json:"superviseur"`
	PresidentComite      string          `json:"presidentComite"`
	ParoisseOrigineVille string          `json:"paroisseOrigineVille,omitempty"`
	ParoisseOriginePays  string          `json:"paroisseOriginePays,omitempty"`
	ParoisseAccueilVille string          `json:"paroisseAccueilVille,omitempty"`
	ParoisseAccueilPays  string          `json:"paroisseAccueilPays,omitempty"`
	EstChoriste          bool            `json:"estChoriste"`
	Choriste             *ProfilChoriste `json:"choriste,omitempty"`

	// Étape 5: Photo & paiement
	PhotoUrl                string `json:"photoUrl"`
	ReferencePaiement       string `json:"referencePaiement,omitempty"`
	CertificationExactitude bool   `json:"certificationExactitude"`
}
