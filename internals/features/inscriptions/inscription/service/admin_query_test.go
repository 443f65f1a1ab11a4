package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uecc_backend/internals/constants"
	iModel "uecc_backend/internals/features/inscriptions/inscription/model"
)

func sampleRecords() []iModel.InscriptionModel {
	return []iModel.InscriptionModel{
		{
			ID: "1", NumeroDossier: "UECC-2025-1001", Nom: "AGOSSOU", Prenoms: "Jean",
			Email: "jean@exemple.bj", Telephone: "0190123456",
			StatutPaiement: constants.StatutEnAttente,
		},
		{
			ID: "2", NumeroDossier: "UECC-2025-1002", Nom: "DOSSOU", Prenoms: "Marie",
			Email: "marie@exemple.bj", Telephone: "0145678901",
			StatutPaiement: constants.StatutPaye,
		},
		{
			ID: "3", NumeroDossier: "UECC-2025-1003", Nom: "HOUNSOU", Prenoms: "Paul",
			Email: "paul@exemple.bj", Telephone: "0198765432",
			StatutPaiement: constants.StatutValide,
		},
	}
}

func TestFilter_IdentiteSansCriteres(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, records, Filter(records, "", StatutFiltreTous))
	assert.Equal(t, records, Filter(records, "", ""))
}

func TestFilter_ParStatut(t *testing.T) {
	out := Filter(sampleRecords(), "", constants.StatutPaye)
	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestFilter_RechercheInsensibleCasse(t *testing.T) {
	out := Filter(sampleRecords(), "agossou", StatutFiltreTous)
	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)

	out = Filter(sampleRecords(), "MARIE", StatutFiltreTous)
	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestFilter_RechercheNumeroEtTelephone(t *testing.T) {
	out := Filter(sampleRecords(), "uecc-2025-1003", StatutFiltreTous)
	assert.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)

	out = Filter(sampleRecords(), "0145678901", StatutFiltreTous)
	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestFilter_StatutEtRechercheCumules(t *testing.T) {
	// "exemple.bj" matche les trois emails; le statut réduit à un seul dossier
	out := Filter(sampleRecords(), "exemple.bj", constants.StatutValide)
	assert.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)

	// critères incompatibles → vide
	out = Filter(sampleRecords(), "agossou", constants.StatutValide)
	assert.Empty(t, out)
}

func TestAggregate(t *testing.T) {
	s := Aggregate(sampleRecords())

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.EnAttente)
	assert.Equal(t, 1, s.Paye)
	assert.Equal(t, 1, s.Valide)
}

func TestAggregate_StatutInconnuCompteEnAttente(t *testing.T) {
	records := sampleRecords()
	records[0].StatutPaiement = "rembourse"

	s := Aggregate(records)
	assert.Equal(t, 2, s.EnAttente)
	// l'invariant tient même avec un statut hors nomenclature
	assert.Equal(t, s.Total, s.EnAttente+s.Paye+s.Valide)
	assert.Equal(t, len(records), s.Total)
}

func TestAggregate_Vide(t *testing.T) {
	assert.Equal(t, Stats{}, Aggregate(nil))
}
