package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"uecc_backend/internals/constants"
	"uecc_backend/internals/databases"
	"uecc_backend/internals/features/inscriptions/inscription/dto"
	iModel "uecc_backend/internals/features/inscriptions/inscription/model"
)

// Clés des deux blobs persistés.
const (
	StorageKey = "uecc_registrations"
	AdminKey   = "uecc_admin_session"
)

const adminSessionMarker = "authenticated"

// Nombre de tirages du numéro de dossier avant d'accepter un éventuel doublon.
// Le suffixe à 4 chiffres n'est pas unique par construction; on revérifie et on
// retire, puis on accepte le dernier tirage (risque résiduel documenté).
const numeroDossierRetries = 5

// AdminCredentials porte le couple d'identifiants fixe du tableau de bord.
// La comparaison du mot de passe est déléguée (bcrypt côté configs).
type AdminCredentials struct {
	Email         string
	CheckPassword func(candidate string) bool
}

// InscriptionRepository persiste les dossiers dans le KVStore: chaque écriture
// relit la collection entière, la modifie en mémoire et la réécrit. Un seul
// écrivain logique, pas de verrou au-delà de celui du backend KV.
type InscriptionRepository struct {
	kv    databases.KVStore
	admin AdminCredentials
	now   func() time.Time
}

func NewInscriptionRepository(kv databases.KVStore, admin AdminCredentials) *InscriptionRepository {
	return &InscriptionRepository{kv: kv, admin: admin, now: time.Now}
}

// ListAll renvoie tous les dossiers, sans ordre garanti. Un blob corrompu est
// traité comme une collection vide: la disponibilité prime sur le signalement.
func (r *InscriptionRepository) ListAll(ctx context.Context) ([]iModel.InscriptionModel, error) {
	raw, found, err := r.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []iModel.InscriptionModel{}, nil
	}
	var records []iModel.InscriptionModel
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("[WARN] blob %s corrompu, collection vide utilisée: %v", StorageKey, err)
		return []iModel.InscriptionModel{}, nil
	}
	return records, nil
}

// EmailExists fait une comparaison exacte insensible à la casse.
func (r *InscriptionRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	records, err := r.ListAll(ctx)
	if err != nil {
		return false, err
	}
	needle := strings.ToLower(strings.TrimSpace(email))
	for _, rec := range records {
		if strings.ToLower(rec.Email) == needle {
			return true, nil
		}
	}
	return false, nil
}

// Create assigne id, numéro de dossier, date et statut initial, ajoute le
// dossier à la collection et la persiste. Retourne le dossier complet.
func (r *InscriptionRepository) Create(ctx context.Context, form *dto.InscriptionForm) (iModel.InscriptionModel, error) {
	records, err := r.ListAll(ctx)
	if err != nil {
		return iModel.InscriptionModel{}, err
	}

	rec := form.ToModel()
	rec.ID = uuid.NewString()
	rec.NumeroDossier = r.generateNumeroDossier(records)
	rec.DateInscription = r.now()
	rec.StatutPaiement = constants.StatutEnAttente

	records = append(records, *rec)
	if err := r.saveAll(ctx, records); err != nil {
		return iModel.InscriptionModel{}, err
	}
	return *rec, nil
}

// UpdateStatut ne touche que le statut de paiement. Retourne false (sans
// erreur) si l'id est inconnu; la collection reste alors inchangée.
func (r *InscriptionRepository) UpdateStatut(ctx context.Context, id, statut string) (bool, error) {
	if !constants.IsStatutPaiement(statut) {
		return false, fmt.Errorf("statut de paiement inconnu: %q", statut)
	}
	records, err := r.ListAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range records {
		if records[i].ID == id {
			records[i].StatutPaiement = statut
			if err := r.saveAll(ctx, records); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete retire le dossier de la collection; false si l'id est inconnu.
func (r *InscriptionRepository) Delete(ctx context.Context, id string) (bool, error) {
	records, err := r.ListAll(ctx)
	if err != nil {
		return false, err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := r.saveAll(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (r *InscriptionRepository) saveAll(ctx context.Context, records []iModel.InscriptionModel) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, StorageKey, raw)
}

// generateNumeroDossier produit UECC-<année>-<4 chiffres> en revérifiant les
// collisions sur la collection courante.
func (r *InscriptionRepository) generateNumeroDossier(existing []iModel.InscriptionModel) string {
	taken := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		taken[rec.NumeroDossier] = struct{}{}
	}
	numero := ""
	for i := 0; i < numeroDossierRetries; i++ {
		numero = fmt.Sprintf("%s-%d-%04d",
			constants.PrefixeNumeroDossier, r.now().Year(), 1000+rand.Intn(9000))
		if _, dup := taken[numero]; !dup {
			return numero
		}
	}
	return numero
}

/* =======================================================
   SESSION ADMIN
   ======================================================= */

// AdminAuthenticate compare email + mot de passe avec le couple fixe et pose
// le marqueur de session. Jamais d'indication sur le champ fautif.
func (r *InscriptionRepository) AdminAuthenticate(ctx context.Context, email, password string) (bool, error) {
	if !strings.EqualFold(strings.TrimSpace(email), r.admin.Email) {
		return false, nil
	}
	if r.admin.CheckPassword == nil || !r.admin.CheckPassword(password) {
		return false, nil
	}
	if err := r.kv.Set(ctx, AdminKey, []byte(`"`+adminSessionMarker+`"`)); err != nil {
		return false, err
	}
	return true, nil
}

// AdminLogout efface le marqueur sans condition.
func (r *InscriptionRepository) AdminLogout(ctx context.Context) error {
	return r.kv.Delete(ctx, AdminKey)
}

// IsAdminAuthenticated lit le marqueur de session.
func (r *InscriptionRepository) IsAdminAuthenticated(ctx context.Context) bool {
	raw, found, err := r.kv.Get(ctx, AdminKey)
	if err != nil || !found {
		return false
	}
	var marker string
	if err := json.Unmarshal(raw, &marker); err != nil {
		return false
	}
	return marker == adminSessionMarker
}
