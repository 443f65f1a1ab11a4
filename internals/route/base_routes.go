package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// BaseRoutes enregistre les routes techniques hors API.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API d'inscription UECC 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Seconds()

		return c.JSON(fiber.Map{
			"status":         "OK",
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
