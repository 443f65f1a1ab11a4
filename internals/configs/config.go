package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash []byte // haché au démarrage, jamais comparé en clair
	DatabaseURL       string
	PaymentServerKey  string
	PaymentSandbox    bool
)

// Identifiants admin par défaut du prototype. À surcharger via ENV en production.
const (
	defaultAdminEmail    = "admin@uecc.bj"
	defaultAdminPassword = "UECCadmin2025!"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Pas de fichier .env, utilisation des ENV du système")
		} else {
			log.Println("✅ Fichier .env chargé !")
		}
	} else {
		log.Println("🚀 Environnement Railway détecté, ENV du système")
	}

	JWTSecret = GetEnv("JWT_SECRET", "dev-secret-uecc")
	DatabaseURL = GetEnv("DATABASE_URL")
	AdminEmail = GetEnv("ADMIN_EMAIL", defaultAdminEmail)
	PaymentServerKey = GetEnv("PAYMENT_SERVER_KEY")
	PaymentSandbox = GetEnv("PAYMENT_SANDBOX", "true") != "false"

	if GetEnv("JWT_SECRET") == "" {
		log.Println("⚠️ JWT_SECRET non défini, secret de développement utilisé")
	}
	if DatabaseURL == "" {
		log.Println("⚠️ DATABASE_URL non défini, stockage en mémoire (les données ne survivent pas au redémarrage)")
	}

	loadAdminPassword()
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
