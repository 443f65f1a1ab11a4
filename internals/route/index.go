package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"uecc_backend/internals/configs"
	inscriptionController "uecc_backend/internals/features/inscriptions/inscription/controller"
	inscriptionRoute "uecc_backend/internals/features/inscriptions/inscription/route"
	"uecc_backend/internals/middlewares"
)

var startTime time.Time

// SetupRoutes assemble tous les groupes de routes de l'application.
func SetupRoutes(app *fiber.App, wizardCtrl *inscriptionController.WizardController, adminCtrl *inscriptionController.AdminController) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up InscriptionRoutes...")
	public := app.Group("/api/inscriptions", middlewares.GlobalRateLimiter())
	inscriptionRoute.InscriptionRoutes(public, wizardCtrl)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up AdminRoutes...")
	app.Post("/api/admin/login", middlewares.LoginRateLimiter(), adminCtrl.Login)

	admin := app.Group("/api/admin", middlewares.AdminAuth(middlewares.AdminAuthOpts{
		Secret:         configs.JWTSecret,
		SessionChecker: func(c *fiber.Ctx) bool {
			return adminCtrl.Repo.IsAdminAuthenticated(c.Context())
		},
	}))
	inscriptionRoute.AdminRoutes(admin, adminCtrl)
}
