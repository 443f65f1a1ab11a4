package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"uecc_backend/internals/constants"
	iModel "uecc_backend/internals/features/inscriptions/inscription/model"
)

const exportSheet = "Inscriptions UECC"

// Colonnes de l'export, dans l'ordre du tableau de bord.
var exportColumns = []struct {
	Header string
	Width  float64
	Value  func(r iModel.InscriptionModel) string
}{
	{"N° Dossier", 15, func(r iModel.InscriptionModel) string { return r.NumeroDossier }},
	{"Date d'inscription", 20, func(r iModel.InscriptionModel) string { return r.DateInscription.Format("02/01/2006 15:04") }},
	{"Nom", 20, func(r iModel.InscriptionModel) string { return r.Nom }},
	{"Prénoms", 25, func(r iModel.InscriptionModel) string { return r.Prenoms }},
	{"Email", 30, func(r iModel.InscriptionModel) string { return r.Email }},
	{"Téléphone", 15, func(r iModel.InscriptionModel) string { return r.Telephone }},
	{"Cellule provenance", 25, func(r iModel.InscriptionModel) string { return r.CelluleProvenance }},
	{"Université", 30, func(r iModel.InscriptionModel) string { return r.Universite }},
	{"Filière", 25, func(r iModel.InscriptionModel) string { return r.Filiere }},
	{"Année d'étude", 15, func(r iModel.InscriptionModel) string { return r.AnneeEtude }},
	{"Matricule", 15, func(r iModel.InscriptionModel) string { return r.Matricule }},
	{"Profession", 25, func(r iModel.InscriptionModel) string { return r.Profession }},
	{"Situation matrimoniale", 25, func(r iModel.InscriptionModel) string { return r.SituationMatrimoniale }},
	{"Grade église", 20, func(r iModel.InscriptionModel) string { return r.GradeEglise }},
	{"Paroisse origine", 30, func(r iModel.InscriptionModel) string { return r.ParoisseOrigine }},
	{"Ville paroisse origine", 20, func(r iModel.InscriptionModel) string { return r.ParoisseOrigineVille }},
	{"Pays paroisse origine", 20, func(r iModel.InscriptionModel) string { return r.ParoisseOriginePays }},
	{"Chargé paroisse origine", 30, func(r iModel.InscriptionModel) string { return r.ChargeParoisseOrigine }},
	{"Paroisse accueil", 30, func(r iModel.InscriptionModel) string { return r.ParoisseAccueil }},
	{"Ville paroisse accueil", 20, func(r iModel.InscriptionModel) string { return r.ParoisseAccueilVille }},
	{"Pays paroisse accueil", 20, func(r iModel.InscriptionModel) string { return r.ParoisseAccueilPays }},
	{"Chargé paroisse accueil", 30, func(r iModel.InscriptionModel) string { return r.ChargeParoisseAccueil }},
	{"Année découverte UECC", 10, func(r iModel.InscriptionModel) string { return r.AnneeDecouverteUECC }},
	{"Cellule UECC", 25, func(r iModel.InscriptionModel) string { return r.CelluleUECCMilite }},
	{"Responsable cellule époque", 30, func(r iModel.InscriptionModel) string { return r.ResponsableCelluleEpoque }},
	{"Poste occupé UECC", 25, func(r iModel.InscriptionModel) string { return r.PosteOccupeUECC }},
	{"Responsable actuel cellule", 30, func(r iModel.InscriptionModel) string { return r.ResponsableActuelCellule }},
	{"Dernière activité UECC", 35, func(r iModel.InscriptionModel) string { return r.DerniereActiviteUECC }},
	{"Année activité", 15, func(r iModel.InscriptionModel) string { return r.AnneeActivite }},
	{"Superviseur", 25, func(r iModel.InscriptionModel) string { return r.Superviseur }},
	{"Président comité", 25, func(r iModel.InscriptionModel) string { return r.PresidentComite }},
	{"Est choriste", 12, func(r iModel.InscriptionModel) string { return ouiNon(r.EstChoriste) }},
	{"Rôle choriste", 20, func(r iModel.InscriptionModel) string {
		if r.Choriste != nil {
			return r.Choriste.Role
		}
		return ""
	}},
	{"Maître de chœur", 25, func(r iModel.InscriptionModel) string {
		if r.Choriste != nil {
			return r.Choriste.MaitreChoeur
		}
		return ""
	}},
	{"Connaissance chœur UECC", 25, func(r iModel.InscriptionModel) string {
		return ouiNon(r.Choriste != nil && r.Choriste.ConnaissanceChoeurUECC)
	}},
	{"Intéressé intégrer", 20, func(r iModel.InscriptionModel) string {
		return ouiNon(r.Choriste != nil && r.Choriste.InteresseIntegrer)
	}},
	{"Référence paiement", 20, func(r iModel.InscriptionModel) string { return r.ReferencePaiement }},
	{"Statut paiement", 15, func(r iModel.InscriptionModel) string { return LibelleStatut(r.StatutPaiement) }},
}

func ouiNon(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}

// LibelleStatut rend le statut lisible pour l'export et le tableau de bord.
func LibelleStatut(statut string) string {
	switch statut {
	case constants.StatutPaye:
		return "Payé"
	case constants.StatutValide:
		return "Validé"
	default:
		return "En attente"
	}
}

// ExportFilename nomme le fichier téléchargé avec la date du jour.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("inscriptions_uecc_%s.xlsx", now.Format("2006-01-02"))
}

// BuildWorkbook aplatit la liste filtrée: une ligne par dossier, colonnes
// fixes ordonnées, booléens rendus Oui/Non.
func BuildWorkbook(records []iModel.InscriptionModel) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, col.Header); err != nil {
			return nil, err
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(exportSheet, name, name, col.Width); err != nil {
			return nil, err
		}
	}

	for row, rec := range records {
		for i, col := range exportColumns {
			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, col.Value(rec)); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
