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
	appanalytics "github.com/jmestre/joyeria-api/internal/application/analytics"
	"github.com/jmestre/joyeria-api/internal/application/auth"
	"github.com/jmestre/joyeria-api/internal/application/inventory"
	"github.com/jmestre/joyeria-api/internal/application/orders"
	"github.com/jmestre/joyeria-api/internal/application/usecase"
	"github.com/jmestre/joyeria-api/internal/application/workflow"
	"github.com/jmestre/joyeria-api/internal/infrastructure/mailer"
	infrapdf "github.com/jmestre/joyeria-api/internal/infrastructure/pdf"
	"github.com/jmestre/joyeria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jmestre/joyeria-api/internal/interfaces/http"
	"github.com/jmestre/joyeria-api/pkg/config"
	"github.com/jmestre/joyeria-api/pkg/logger"
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

	parcelRepo := postgres.NewParcelRepository(pool)
	movementRepo := postgres.NewParcelMovementRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	statusRepo := postgres.NewOrderStatusRepository(pool)
	commentRepo := postgres.NewOrderCommentRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Avisos por correo al cliente en cambios de estado; sin SMTP_HOST quedan
	// deshabilitados (notifier nil).
	var notifier workflow.Notifier
	if cfg.SMTP.Enabled() {
		notifier = mailer.NewSMTPNotifier(cfg.SMTP)
	}

	ledgerUC := inventory.NewLedgerUseCase(txRunner, parcelRepo, movementRepo)
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, customerRepo)
	workflowUC := workflow.NewStatusWorkflowUseCase(
		txRunner, orderRepo, statusRepo, commentRepo, customerRepo, notifier,
	)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// PDF: hoja resumen del pedido para el taller
	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	pdfUC := orders.NewPDFUseCase(orderRepo, customerRepo, statusRepo, movementRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Joyería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:    ledgerUC,
		OrderUC:     orderUC,
		WorkflowUC:  workflowUC,
		PDFUC:       pdfUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
