package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "uecc_backend/internals/helpers"
)

// ErrorHandler centralise la conversion des erreurs en enveloppe JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return helper.FromFiberError(c, err)
}
