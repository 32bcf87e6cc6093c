package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/tu-usuario/scrapmaster-api/internal/application/analytics"
	"github.com/tu-usuario/scrapmaster-api/internal/application/auth"
	"github.com/tu-usuario/scrapmaster-api/internal/application/sales"
	"github.com/tu-usuario/scrapmaster-api/internal/application/scrap"
	"github.com/tu-usuario/scrapmaster-api/internal/application/usecase"
	"github.com/tu-usuario/scrapmaster-api/internal/infrastructure/authprovider"
	infrapdf "github.com/tu-usuario/scrapmaster-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/scrapmaster-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/scrapmaster-api/internal/interfaces/http"
	"github.com/tu-usuario/scrapmaster-api/pkg/config"
	"github.com/tu-usuario/scrapmaster-api/pkg/logger"
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

	if err := postgres.Migrate(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	itemRepo := postgres.NewScrapItemRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	providerClient := authprovider.NewClient(cfg.Auth.ProviderSessionURL)
	authUC := auth.NewAuthUseCase(providerClient, userRepo, sessionRepo, auth.Config{
		ProviderLoginURL: cfg.Auth.ProviderLoginURL,
		FrontendURL:      cfg.Auth.FrontendURL,
		SessionTTLDays:   cfg.Auth.SessionTTLDays,
	})

	scrapUC := scrap.NewScrapUseCase(txRunner, itemRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, saleRepo)
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	salesUC := sales.NewSalesUseCase(txRunner, itemRepo, companyRepo, saleRepo, receiptGen)
	dashboardUC := appanalytics.NewDashboardUseCase(statsRepo, txnRepo)

	// Admin por defecto: el rol solo cambia fuera de banda, así que el primer
	// admin tiene que existir antes del primer login.
	if err := authUC.SeedAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminName); err != nil {
		log.Fatal().Err(err).Msg("seed de usuario admin")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowCredentials: true,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ScrapMaster API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ScrapUC:     scrapUC,
		CompanyUC:   companyUC,
		SalesUC:     salesUC,
		DashboardUC: dashboardUC,
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
