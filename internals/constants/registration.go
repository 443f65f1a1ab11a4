package constants

// Statuts de paiement d'un dossier d'inscription.
const (
	StatutEnAttente = "en_attente"
	StatutPaye      = "paye"
	StatutValide    = "valide"
)

// StatutsPaiement liste les statuts acceptés par la transition admin.
var StatutsPaiement = []string{StatutEnAttente, StatutPaye, StatutValide}

func IsStatutPaiement(s string) bool {
	for _, v := range StatutsPaiement {
		if v == s {
			return true
		}
	}
	return false
}

// Préfixe des numéros de dossier: UECC-<année>-<4 chiffres>.
const PrefixeNumeroDossier = "UECC"

// Frais de badge (FCFA) exigés avant la soumission finale.
const MontantFraisBadge = 1500

// Listes d'options affichées par le formulaire (servies telles quelles au client).
var AnneesEtude = []string{
	"1ère année",
	"2ème année",
	"Licence 3",
	"Master 1",
	"Master 2",
	"Doctorat",
	"Déjà en activité",
	"Autre",
}

var SituationsMatrimoniales = []string{
	"Célibataire",
	"Marié(e)",
	"Fiancé(e)",
	"Union libre",
	"En concubinage",
	"Divorcé(e)",
	"Veuf(ve)",
}

var GradesEglise = []string{
	"Fidèle",
	"Choriste",
	"Évangéliste",
	"Diacre",
	"Ancien",
	"Pasteur",
	"Prophète",
	"Autre",
}

var Cellules = []string{
	"Abomey-calavi (UAC)",
	"Parakou (UP)",
	"Lokossa",
	"CU Porto-Novo",
	"Abomey",
	"Dassa",
	"ENEAM",
	"FSS",
	"Natitingou",
	"UNA Porto-Novo",
	"Ketou",
	"Sakété",
	"Autres",
}
