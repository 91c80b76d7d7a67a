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

	appanalytics "github.com/jhoicas/myland-api/internal/application/analytics"
	"github.com/jhoicas/myland-api/internal/application/production"
	"github.com/jhoicas/myland-api/internal/application/sales"
	"github.com/jhoicas/myland-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/myland-api/internal/infrastructure/pdf"
	"github.com/jhoicas/myland-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/myland-api/internal/interfaces/http"
	"github.com/jhoicas/myland-api/pkg/config"
	"github.com/jhoicas/myland-api/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicialización del esquema")
	}

	ingredientRepo := postgres.NewIngredientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	shopRepo := postgres.NewShopRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	shopUC := usecase.NewShopUseCase(shopRepo, txRunner)
	productionUC := production.NewProductionUseCase(txRunner, productionRepo, cfg.Policy.RestockOnDelete)
	saleUC := sales.NewRecordSaleUseCase(txRunner, saleRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// PDF: reporte de ventas
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := appanalytics.NewSalesReportUseCase(analyticsRepo, pdfGenerator)

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
		Title:    "Myland API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		IngredientUC: ingredientUC,
		ProductUC:    productUC,
		ShopUC:       shopUC,
		ProductionUC: productionUC,
		SaleUC:       saleUC,
		DashboardUC:  dashboardUC,
		ReportUC:     reportUC,
		Log:          log,
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
