package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// loadAdminPassword hache le mot de passe admin une seule fois au démarrage.
// Le mot de passe en clair ne reste jamais en mémoire côté configs.
func loadAdminPassword() {
	plain := GetEnv("ADMIN_PASSWORD", defaultAdminPassword)

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Impossible de hacher le mot de passe admin: %v", err)
	}
	AdminPasswordHash = hash
}

// CheckAdminPassword compare le mot de passe soumis avec le hash en mémoire.
func CheckAdminPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword(AdminPasswordHash, []byte(candidate)) == nil
}
