package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"uecc_backend/internals/configs"
	databases "uecc_backend/internals/databases"
	inscriptionController "uecc_backend/internals/features/inscriptions/inscription/controller"
	"uecc_backend/internals/features/inscriptions/inscription/repository"
	"uecc_backend/internals/features/inscriptions/inscription/service"
	middlewares "uecc_backend/internals/middlewares"
	routes "uecc_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON rapide
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          middlewares.ErrorHandler,
	})

	// ⚙️ middlewares de base + performance
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // cache 304
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.CorsMiddleware())

	// 🔎 Request-ID + chrono (observabilité légère)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	// 🔌 Store clé/valeur: Postgres si DATABASE_URL, sinon mémoire
	var kv databases.KVStore
	var gormKV *databases.GormKV
	if configs.DatabaseURL != "" {
		var err error
		gormKV, err = databases.ConnectKV(configs.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Connexion au store impossible: %v", err)
		}
		kv = gormKV
		log.Println("✅ Store PostgreSQL connecté")
	} else {
		kv = databases.NewMemoryKV()
		log.Println("⚠️ DATABASE_URL absent, store en mémoire (non persistant)")
	}

	// ✅ Paiement (Snap)
	service.InitSnap(configs.PaymentServerKey, configs.PaymentSandbox)

	repo := repository.NewInscriptionRepository(kv, repository.AdminCredentials{
		Email:         configs.AdminEmail,
		CheckPassword: configs.CheckAdminPassword,
	})
	wizardSvc := service.NewWizardService(repo, service.NewWizardStore())
	querySvc := service.NewAdminQueryService(repo)

	wizardCtrl := inscriptionController.NewWizardController(wizardSvc, configs.PaymentSandbox)
	adminCtrl := inscriptionController.NewAdminController(repo, querySvc, configs.JWTSecret)

	// ✅ Routes
	routes.SetupRoutes(app, wizardCtrl, adminCtrl)

	// 🔒 timeouts serveur
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// arrêt propre + fermeture du store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if gormKV != nil {
		_ = gormKV.Close()
	}
}
