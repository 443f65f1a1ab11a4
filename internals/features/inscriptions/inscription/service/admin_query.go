package service

import (
	"context"
	"sort"
	"strings"

	"uecc_backend/internals/constants"
	iModel "uecc_backend/internals/features/inscriptions/inscription/model"
	"uecc_backend/internals/features/inscriptions/inscription/repository"
)

// StatutFiltreTous désactive le filtre de statut.
const StatutFiltreTous = "all"

// Stats sont les compteurs du bandeau du tableau de bord.
// Invariant: EnAttente + Paye + Valide == Total.
type Stats struct {
	Total     int `json:"total"`
	EnAttente int `json:"en_attente"`
	Paye      int `json:"paye"`
	Valide    int `json:"valide"`
}

// Filter garde un dossier quand le statut correspond (ou "all") ET que la
// recherche est vide ou trouvée dans nom, prénoms, email ou numéro de dossier
// (insensible à la casse), ou telle quelle dans le téléphone.
func Filter(records []iModel.InscriptionModel, search, statut string) []iModel.InscriptionModel {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]iModel.InscriptionModel, 0, len(records))
	for _, rec := range records {
		if statut != StatutFiltreTous && statut != "" && rec.StatutPaiement != statut {
			continue
		}
		if needle != "" && !matchesSearch(rec, needle, search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesSearch(rec iModel.InscriptionModel, lowered, raw string) bool {
	return strings.Contains(strings.ToLower(rec.Nom), lowered) ||
		strings.Contains(strings.ToLower(rec.Prenoms), lowered) ||
		strings.Contains(strings.ToLower(rec.Email), lowered) ||
		strings.Contains(strings.ToLower(rec.NumeroDossier), lowered) ||
		strings.Contains(rec.Telephone, strings.TrimSpace(raw))
}

// Aggregate partitionne la collection par statut.
func Aggregate(records []iModel.InscriptionModel) Stats {
	s := Stats{Total: len(records)}
	for _, rec := range records {
		switch rec.StatutPaiement {
		case constants.StatutPaye:
			s.Paye++
		case constants.StatutValide:
			s.Valide++
		default:
			// statut inconnu → compté en attente, l'invariant total tient
			s.EnAttente++
		}
	}
	return s
}

// AdminQueryService assemble les lectures du tableau de bord. Après une
// transition de statut l'appelant recharge la liste entière: pas de patch
// incrémental, la simplicité prime au volume attendu.
type AdminQueryService struct {
	repo *repository.InscriptionRepository
}

func NewAdminQueryService(repo *repository.InscriptionRepository) *AdminQueryService {
	return &AdminQueryService{repo: repo}
}

// List renvoie les dossiers filtrés, du plus récent au plus ancien.
func (s *AdminQueryService) List(ctx context.Context, search, statut string) ([]iModel.InscriptionModel, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].DateInscription.After(records[j].DateInscription)
	})
	return Filter(records, search, statut), nil
}

// StatsGlobales compte sur la collection entière, pas sur la liste filtrée.
func (s *AdminQueryService) StatsGlobales(ctx context.Context) (Stats, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Aggregate(records), nil
}

// ChangeStatut délègue au store; false si l'id est inconnu.
func (s *AdminQueryService) ChangeStatut(ctx context.Context, id, statut string) (bool, error) {
	return s.repo.UpdateStatut(ctx, id, statut)
}
