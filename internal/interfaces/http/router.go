package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/auth"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/docstore"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store docstore.Store

	ProductUC    *usecase.ProductUseCase
	SalesUC      *usecase.TradeUseCase
	SellReturnUC *usecase.TradeUseCase
	PurchaseUC   *usecase.TradeUseCase
	DraftUC      *usecase.TradeUseCase
	QuoteUC      *usecase.TradeUseCase
	OrderUC      *usecase.TradeUseCase
	ReqUC        *usecase.TradeUseCase

	SupplierUC *usecase.PartyUseCase
	CustomerUC *usecase.PartyUseCase

	StockUC    *usecase.StockUseCase
	ExpenseUC  *usecase.ExpenseUseCase
	SettingsUC *usecase.SettingsUseCase
	RoleUC     *usecase.RoleUseCase
	CRMUC      *usecase.CRMUseCase

	// Un CatalogUseCase por colección de catálogo simple.
	BrandUC             *usecase.CatalogUseCase
	CategoryUC          *usecase.CatalogUseCase
	LocationUC          *usecase.CatalogUseCase
	ExpenseCategoryUC   *usecase.CatalogUseCase
	CustomerGroupUC     *usecase.CatalogUseCase
	SellingPriceGroupUC *usecase.CatalogUseCase
	LeadSourceUC        *usecase.CatalogUseCase
	LifeStageUC         *usecase.CatalogUseCase
	VariationUC         *usecase.CatalogUseCase

	DashboardUC *usecase.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo Admin)
	users := protected.Group("/users", RequireRole("Admin"))
	users.Get("/", authHandler.ListUsers)
	users.Post("/:id/deactivate", authHandler.DeactivateUser)

	// Products
	mountProducts(protected, NewProductHandler(deps.ProductUC))

	// Documentos comerciales: mismo handler, seis colecciones. Las rutas
	// conservan los nombres de pantalla del POS.
	mountTrades(protected, "/sells", NewTradeHandler(deps.SalesUC, "Sales"))
	mountTrades(protected, "/sell-returns", NewTradeHandler(deps.SellReturnUC, "Sell Returns"))
	mountTrades(protected, "/purchases", NewTradeHandler(deps.PurchaseUC, "Purchases"))
	mountTrades(protected, "/drafts", NewTradeHandler(deps.DraftUC, "Drafts"))
	mountTrades(protected, "/quotations", NewTradeHandler(deps.QuoteUC, "Quotations"))
	mountTrades(protected, "/purchase-orders", NewTradeHandler(deps.OrderUC, "Purchase Orders"))
	mountTrades(protected, "/purchase-requisitions", NewTradeHandler(deps.ReqUC, "Purchase Requisitions"))

	// Contactos
	mountParties(protected, "/suppliers", NewPartyHandler(deps.SupplierUC, "Suppliers"))
	mountParties(protected, "/customers", NewPartyHandler(deps.CustomerUC, "Customers"))

	// Stock
	stockHandler := NewStockHandler(deps.StockUC)
	transfers := protected.Group("/stock-transfers")
	transfers.Post("/", stockHandler.CreateTransfer)
	transfers.Get("/", stockHandler.ListTransfers)
	transfers.Get("/export", stockHandler.ExportTransfers)
	transfers.Get("/:id", stockHandler.GetTransfer)
	transfers.Put("/:id", stockHandler.UpdateTransfer)
	transfers.Delete("/:id", stockHandler.DeleteTransfer)

	adjustments := protected.Group("/adjustments")
	adjustments.Post("/", stockHandler.CreateAdjustment)
	adjustments.Get("/", stockHandler.ListAdjustments)
	adjustments.Get("/export", stockHandler.ExportAdjustments)
	adjustments.Get("/:id", stockHandler.GetAdjustment)
	adjustments.Put("/:id", stockHandler.UpdateAdjustment)
	adjustments.Delete("/:id", stockHandler.DeleteAdjustment)

	protected.Get("/stock-levels", stockHandler.ListLevels)

	// Gastos
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses")
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/export", expenseHandler.Export)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Catálogos simples
	mountCatalog(protected, "/brands", NewCatalogHandler(deps.BrandUC, "Brands"))
	mountCatalog(protected, "/categories", NewCatalogHandler(deps.CategoryUC, "Categories"))
	mountCatalog(protected, "/business-locations", NewCatalogHandler(deps.LocationUC, "Business Locations"))
	mountCatalog(protected, "/expense-categories", NewCatalogHandler(deps.ExpenseCategoryUC, "Expense Categories"))
	mountCatalog(protected, "/customer-groups", NewCatalogHandler(deps.CustomerGroupUC, "Customer Groups"))
	mountCatalog(protected, "/selling-price-groups", NewCatalogHandler(deps.SellingPriceGroupUC, "Selling Price Groups"))
	mountCatalog(protected, "/lead-sources", NewCatalogHandler(deps.LeadSourceUC, "Lead Sources"))
	mountCatalog(protected, "/life-stages", NewCatalogHandler(deps.LifeStageUC, "Life Stages"))
	mountCatalog(protected, "/variations", NewCatalogHandler(deps.VariationUC, "Variations"))

	// Configuración
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	units := protected.Group("/units")
	units.Post("/", settingsHandler.CreateUnit)
	units.Get("/", settingsHandler.ListUnits)
	units.Put("/:id", settingsHandler.UpdateUnit)
	units.Delete("/:id", settingsHandler.DeleteUnit)

	taxes := protected.Group("/taxes")
	taxes.Post("/", settingsHandler.CreateTax)
	taxes.Get("/", settingsHandler.ListTaxes)
	taxes.Put("/:id", settingsHandler.UpdateTax)
	taxes.Delete("/:id", settingsHandler.DeleteTax)

	warranties := protected.Group("/warranties")
	warranties.Post("/", settingsHandler.CreateWarranty)
	warranties.Get("/", settingsHandler.ListWarranties)
	warranties.Put("/:id", settingsHandler.UpdateWarranty)
	warranties.Delete("/:id", settingsHandler.DeleteWarranty)

	discounts := protected.Group("/discounts")
	discounts.Post("/", settingsHandler.CreateDiscount)
	discounts.Get("/", settingsHandler.ListDiscounts)
	discounts.Put("/:id", settingsHandler.UpdateDiscount)
	discounts.Delete("/:id", settingsHandler.DeleteDiscount)

	// Roles (solo Admin)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles := protected.Group("/roles", RequireRole("Admin"))
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// CRM
	crmHandler := NewCRMHandler(deps.CRMUC)
	leads := protected.Group("/leads")
	leads.Post("/", crmHandler.CreateLead)
	leads.Get("/", crmHandler.ListLeads)
	leads.Get("/export", crmHandler.ExportLeads)
	leads.Get("/:id", crmHandler.GetLead)
	leads.Put("/:id", crmHandler.UpdateLead)
	leads.Delete("/:id", crmHandler.DeleteLead)

	followUps := protected.Group("/follow-ups")
	followUps.Post("/", crmHandler.CreateFollowUp)
	followUps.Get("/", crmHandler.ListFollowUps)
	followUps.Get("/:id", crmHandler.GetFollowUp)
	followUps.Put("/:id", crmHandler.UpdateFollowUp)
	followUps.Delete("/:id", crmHandler.DeleteFollowUp)

	// Dashboard
	protected.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Summary)

	// Stream en vivo por colección
	protected.Get("/live/:collection", NewLiveHandler(deps.Store).Stream)
}

func mountProducts(router fiber.Router, h *ProductHandler) {
	products := router.Group("/products")
	products.Post("/", h.Create)
	products.Get("/", h.List)
	products.Get("/export", h.Export)
	products.Get("/:id", h.GetByID)
	products.Put("/:id", h.Update)
	products.Delete("/:id", h.Delete)
}

func mountTrades(router fiber.Router, prefix string, h *TradeHandler) {
	g := router.Group(prefix)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/export", h.Export)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
	g.Post("/:id/convert", h.ConvertToSale)
}

func mountParties(router fiber.Router, prefix string, h *PartyHandler) {
	g := router.Group(prefix)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/export", h.Export)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

func mountCatalog(router fiber.Router, prefix string, h *CatalogHandler) {
	g := router.Group(prefix)
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/export", h.Export)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
