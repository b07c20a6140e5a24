package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/agency-ops-api/internal/application/auth"
	appfunnel "github.com/jhoicas/agency-ops-api/internal/application/funnel"
	"github.com/jhoicas/agency-ops-api/internal/application/ledger"
	apppricing "github.com/jhoicas/agency-ops-api/internal/application/pricing"
	"github.com/jhoicas/agency-ops-api/internal/application/usecase"
	infranotify "github.com/jhoicas/agency-ops-api/internal/infrastructure/notify"
	"github.com/jhoicas/agency-ops-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/agency-ops-api/internal/interfaces/http"
	"github.com/jhoicas/agency-ops-api/pkg/config"
	"github.com/jhoicas/agency-ops-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	commissionRepo := postgres.NewCommissionRepository(pool)
	payoutRepo := postgres.NewPayoutRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	notifier := infranotify.NewLogNotifier(log)

	authUC := auth.NewAuthUseCase(userRepo, partnerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	partnerUC := usecase.NewPartnerUseCase(partnerRepo)
	leadUC := appfunnel.NewLeadUseCase(txRunner, leadRepo, partnerRepo, notifier)
	commissionUC := ledger.NewCommissionUseCase(txRunner, partnerRepo, commissionRepo, notifier)
	payoutUC := ledger.NewPayoutUseCase(txRunner, payoutRepo, notifier)
	packageUC := apppricing.NewPackageUseCase(packageRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Agency Ops API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		PartnerUC:    partnerUC,
		LeadUC:       leadUC,
		CommissionUC: commissionUC,
		PayoutUC:     payoutUC,
		PackageUC:    packageUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
