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

	_ "github.com/jhoicas/retail-pos-api/docs"
	"github.com/jhoicas/retail-pos-api/internal/application/auth"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	"github.com/jhoicas/retail-pos-api/internal/docstore/postgres"
	httpRouter "github.com/jhoicas/retail-pos-api/internal/interfaces/http"
	"github.com/jhoicas/retail-pos-api/internal/service"
	"github.com/jhoicas/retail-pos-api/pkg/config"
	"github.com/jhoicas/retail-pos-api/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén de documentos: memoria para desarrollo y tests, PostgreSQL en
	// producción. El resumen del dashboard solo existe con PostgreSQL.
	var store docstore.Store
	var stats usecase.StatsRepository
	switch cfg.Store.Driver {
	case "postgres":
		pg, err := postgres.New(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		store = pg
		stats = pg
	default:
		store = memory.New()
	}
	defer store.Close()

	reg := service.NewRegistry(store)

	salesUC := usecase.NewTradeUseCase(reg.Sales, reg.Sales, reg.StockLevels)
	sellReturnUC := usecase.NewTradeUseCase(reg.SellReturns, nil, nil)
	purchaseUC := usecase.NewTradeUseCase(reg.Purchases, nil, nil)
	draftUC := usecase.NewTradeUseCase(reg.Drafts, reg.Sales, nil)
	quoteUC := usecase.NewTradeUseCase(reg.Quotations, reg.Sales, nil)
	orderUC := usecase.NewTradeUseCase(reg.PurchaseOrders, nil, nil)
	reqUC := usecase.NewTradeUseCase(reg.PurchaseRequisitions, nil, nil)

	authUC := auth.NewAuthUseCase(reg.Users, auth.JWTConfig{
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
		Title:    "Retail POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store: store,

		ProductUC:    usecase.NewProductUseCase(reg.Products),
		SalesUC:      salesUC,
		SellReturnUC: sellReturnUC,
		PurchaseUC:   purchaseUC,
		DraftUC:      draftUC,
		QuoteUC:      quoteUC,
		OrderUC:      orderUC,
		ReqUC:        reqUC,

		SupplierUC: usecase.NewPartyUseCase(reg.Suppliers),
		CustomerUC: usecase.NewPartyUseCase(reg.Customers),

		StockUC:    usecase.NewStockUseCase(reg.StockTransfers, reg.Adjustments, reg.StockLevels),
		ExpenseUC:  usecase.NewExpenseUseCase(reg.Expenses),
		SettingsUC: usecase.NewSettingsUseCase(reg.Units, reg.Taxes, reg.Warranties, reg.Discounts),
		RoleUC:     usecase.NewRoleUseCase(reg.Roles),
		CRMUC:      usecase.NewCRMUseCase(reg.Leads, reg.FollowUps),

		BrandUC:             usecase.NewCatalogUseCase(reg.Brands),
		CategoryUC:          usecase.NewCatalogUseCase(reg.Categories),
		LocationUC:          usecase.NewCatalogUseCase(reg.Locations),
		ExpenseCategoryUC:   usecase.NewCatalogUseCase(reg.ExpenseCategories),
		CustomerGroupUC:     usecase.NewCatalogUseCase(reg.CustomerGroups),
		SellingPriceGroupUC: usecase.NewCatalogUseCase(reg.SellingPriceGroups),
		LeadSourceUC:        usecase.NewCatalogUseCase(reg.LeadSources),
		LifeStageUC:         usecase.NewCatalogUseCase(reg.LifeStages),
		VariationUC:         usecase.NewCatalogUseCase(reg.Variations),

		DashboardUC: usecase.NewDashboardUseCase(stats),
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
