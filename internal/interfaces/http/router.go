package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/myland-api/internal/application/analytics"
	"github.com/jhoicas/myland-api/internal/application/production"
	"github.com/jhoicas/myland-api/internal/application/sales"
	"github.com/jhoicas/myland-api/internal/application/usecase"
	"github.com/jhoicas/myland-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngredientUC *usecase.IngredientUseCase
	ProductUC    *usecase.ProductUseCase
	ShopUC       *usecase.ShopUseCase
	ProductionUC *production.ProductionUseCase
	SaleUC       *sales.RecordSaleUseCase
	DashboardUC  *analytics.DashboardUseCase
	ReportUC     *analytics.SalesReportUseCase
	Log          *logger.Logger
}

// Router registra las rutas de la API bajo /api/myland.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/myland")

	// Ingredients
	ingredientHandler := NewIngredientHandler(deps.IngredientUC, deps.Log)
	api.Post("/ingredient", ingredientHandler.Create)
	api.Get("/ingredients", ingredientHandler.List)
	api.Delete("/ingredient/:id", ingredientHandler.Delete)

	// Products
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	api.Post("/product", productHandler.Create)
	api.Get("/products", productHandler.List)
	api.Delete("/product/:id", productHandler.Delete)

	// Shops
	shopHandler := NewShopHandler(deps.ShopUC, deps.Log)
	api.Post("/shop", shopHandler.Create)
	api.Get("/shops", shopHandler.List)
	api.Get("/shop/:id", shopHandler.GetByID)
	api.Put("/shop/:id", shopHandler.Update)
	api.Delete("/shop/:id", shopHandler.Delete)

	// Productions
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.Log)
	api.Post("/production", productionHandler.Record)
	api.Get("/production", productionHandler.List)
	api.Delete("/production/:id", productionHandler.Delete)

	// Sales
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Log)
	api.Post("/sale", saleHandler.Record)
	api.Get("/sales", saleHandler.List)
	api.Delete("/sale/:id", saleHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, deps.Log)
	api.Get("/reports/sales", reportHandler.SalesReport)
}
