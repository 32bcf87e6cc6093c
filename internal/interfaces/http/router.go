package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/scrapmaster-api/internal/application/analytics"
	"github.com/tu-usuario/scrapmaster-api/internal/application/auth"
	"github.com/tu-usuario/scrapmaster-api/internal/application/sales"
	"github.com/tu-usuario/scrapmaster-api/internal/application/scrap"
	"github.com/tu-usuario/scrapmaster-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ScrapUC     *scrap.ScrapUseCase
	CompanyUC   *usecase.CompanyUseCase
	SalesUC     *sales.SalesUseCase
	DashboardUC *appanalytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: el flujo de login ocurre antes de tener sesión)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Get("/login", authHandler.Login)
	authGroup.Get("/profile", authHandler.Profile)
	authGroup.Post("/logout", authHandler.Logout)

	// Catálogo de tipos (público)
	scrapHandler := NewScrapHandler(deps.ScrapUC)
	api.Get("/scrap-types", scrapHandler.Types)

	// Rutas protegidas (requieren sesión válida)
	protected := api.Group("/", SessionMiddleware(deps.AuthUC))

	protected.Get("/users/me", authHandler.Me)

	// Scrap items: envío y listado propio para cualquier usuario;
	// vista global y decisión solo admin.
	items := protected.Group("/scrap-items")
	items.Post("/", scrapHandler.Create)
	items.Get("/", scrapHandler.List)
	items.Get("/all", RequireAdmin(), scrapHandler.ListAll)
	items.Put("/:id/status", RequireAdmin(), scrapHandler.UpdateStatus)

	// Companies (solo admin)
	companies := protected.Group("/companies", RequireAdmin())
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Delete("/:id", companyHandler.Delete)

	// Sales (solo admin)
	salesGroup := protected.Group("/sales", RequireAdmin())
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Dashboard (cualquier usuario autenticado; el caso de uso acota por rol)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
