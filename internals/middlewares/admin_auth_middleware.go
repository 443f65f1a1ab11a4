package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AdminAuthOpts struct {
	Secret string
	// SessionChecker consulte le marqueur de session du store; un logout
	// invalide les jetons encore en circulation.
	SessionChecker func(c *fiber.Ctx) bool
}

// AdminAuth protège le tableau de bord: Bearer JWT HS256 + session active.
func AdminAuth(o AdminAuthOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AdminAuth: Secret obligatoire")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Non autorisé")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Méthode de signature invalide")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Jeton invalide")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			return fiber.NewError(fiber.StatusUnauthorized, "Jeton invalide")
		}

		if o.SessionChecker != nil && !o.SessionChecker(c) {
			return fiber.NewError(fiber.StatusUnauthorized, "Session expirée")
		}

		c.Locals("admin_email", claims["sub"])
		return c.Next()
	}
}
