package service

import (
	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// Constructores tipados, uno por familia de colecciones. El Registry los
// agrupa para que el cableado en main sea una sola llamada.

// Colecciones de catálogo simple (todas comparten la forma NamedRecord).
const (
	CollBrands             = "brands"
	CollCategories         = "categories"
	CollLocations          = "business-locations"
	CollExpenseCategories  = "expense-categories"
	CollCustomerGroups     = "customer-groups"
	CollSellingPriceGroups = "selling-price-groups"
	CollLeadSources        = "lead-sources"
	CollLifeStages         = "life-stages"
	CollVariations         = "variations"
)

// NewProducts servicio de productos.
func NewProducts(store docstore.Store) *Service[entity.Product] {
	return New(store, productCodec())
}

// NewTrades servicio de documentos comerciales sobre la colección dada
// (ventas, compras, borradores, cotizaciones, órdenes o requisiciones).
func NewTrades(store docstore.Store, collection string) *Service[entity.TradeDocument] {
	return New(store, tradeCodec(collection))
}

// NewSuppliers servicio de proveedores.
func NewSuppliers(store docstore.Store) *Service[entity.Party] {
	return New(store, partyCodec("suppliers"))
}

// NewCustomers servicio de clientes.
func NewCustomers(store docstore.Store) *Service[entity.Party] {
	return New(store, partyCodec("customers"))
}

// NewCatalog servicio de catálogo simple sobre la colección dada.
func NewCatalog(store docstore.Store, collection string) *Service[entity.NamedRecord] {
	return New(store, namedCodec(collection))
}

// NewUnits servicio de unidades de medida.
func NewUnits(store docstore.Store) *Service[entity.Unit] {
	return New(store, unitCodec())
}

// NewTaxes servicio de tasas de impuesto.
func NewTaxes(store docstore.Store) *Service[entity.Tax] {
	return New(store, taxCodec())
}

// NewWarranties servicio de garantías.
func NewWarranties(store docstore.Store) *Service[entity.Warranty] {
	return New(store, warrantyCodec())
}

// NewDiscounts servicio de promociones.
func NewDiscounts(store docstore.Store) *Service[entity.Discount] {
	return New(store, discountCodec())
}

// NewRoles servicio de roles y su matriz de permisos.
func NewRoles(store docstore.Store) *Service[entity.Role] {
	return New(store, roleCodec())
}

// NewUsers servicio de usuarios.
func NewUsers(store docstore.Store) *Service[entity.User] {
	return New(store, userCodec())
}

// NewExpenses servicio de gastos.
func NewExpenses(store docstore.Store) *Service[entity.Expense] {
	return New(store, expenseCodec())
}

// NewLeads servicio de leads del CRM.
func NewLeads(store docstore.Store) *Service[entity.Lead] {
	return New(store, leadCodec())
}

// NewFollowUps servicio de seguimientos del CRM.
func NewFollowUps(store docstore.Store) *Service[entity.FollowUp] {
	return New(store, followUpCodec())
}

// NewStockTransfers servicio de transferencias de stock.
func NewStockTransfers(store docstore.Store) *Service[entity.StockTransfer] {
	return New(store, transferCodec())
}

// NewAdjustments servicio de ajustes de stock.
func NewAdjustments(store docstore.Store) *Service[entity.StockAdjustment] {
	return New(store, adjustmentCodec())
}

// NewStockLevels servicio de niveles de stock por producto y ubicación.
func NewStockLevels(store docstore.Store) *Service[entity.StockLevel] {
	return New(store, stockLevelCodec())
}

// Registry reúne todos los servicios de entidad construidos sobre un mismo
// almacén. Es lo que main inyecta en los casos de uso y el router.
type Registry struct {
	Products *Service[entity.Product]

	Sales                *Service[entity.TradeDocument]
	SellReturns          *Service[entity.TradeDocument]
	Purchases            *Service[entity.TradeDocument]
	Drafts               *Service[entity.TradeDocument]
	Quotations           *Service[entity.TradeDocument]
	PurchaseOrders       *Service[entity.TradeDocument]
	PurchaseRequisitions *Service[entity.TradeDocument]

	Suppliers *Service[entity.Party]
	Customers *Service[entity.Party]

	Brands             *Service[entity.NamedRecord]
	Categories         *Service[entity.NamedRecord]
	Locations          *Service[entity.NamedRecord]
	ExpenseCategories  *Service[entity.NamedRecord]
	CustomerGroups     *Service[entity.NamedRecord]
	SellingPriceGroups *Service[entity.NamedRecord]
	LeadSources        *Service[entity.NamedRecord]
	LifeStages         *Service[entity.NamedRecord]
	Variations         *Service[entity.NamedRecord]

	Units      *Service[entity.Unit]
	Taxes      *Service[entity.Tax]
	Warranties *Service[entity.Warranty]
	Discounts  *Service[entity.Discount]

	Roles *Service[entity.Role]
	Users *Service[entity.User]

	Expenses  *Service[entity.Expense]
	Leads     *Service[entity.Lead]
	FollowUps *Service[entity.FollowUp]

	StockTransfers *Service[entity.StockTransfer]
	Adjustments    *Service[entity.StockAdjustment]
	StockLevels    *Service[entity.StockLevel]
}

// NewRegistry construye el servicio de cada colección sobre el almacén dado.
func NewRegistry(store docstore.Store) *Registry {
	return &Registry{
		Products: NewProducts(store),

		Sales:                NewTrades(store, entity.TradeSale),
		SellReturns:          NewTrades(store, entity.TradeSellReturn),
		Purchases:            NewTrades(store, entity.TradePurchase),
		Drafts:               NewTrades(store, entity.TradeDraft),
		Quotations:           NewTrades(store, entity.TradeQuotation),
		PurchaseOrders:       NewTrades(store, entity.TradePurchaseOrder),
		PurchaseRequisitions: NewTrades(store, entity.TradePurchaseRequisition),

		Suppliers: NewSuppliers(store),
		Customers: NewCustomers(store),

		Brands:             NewCatalog(store, CollBrands),
		Categories:         NewCatalog(store, CollCategories),
		Locations:          NewCatalog(store, CollLocations),
		ExpenseCategories:  NewCatalog(store, CollExpenseCategories),
		CustomerGroups:     NewCatalog(store, CollCustomerGroups),
		SellingPriceGroups: NewCatalog(store, CollSellingPriceGroups),
		LeadSources:        NewCatalog(store, CollLeadSources),
		LifeStages:         NewCatalog(store, CollLifeStages),
		Variations:         NewCatalog(store, CollVariations),

		Units:      NewUnits(store),
		Taxes:      NewTaxes(store),
		Warranties: NewWarranties(store),
		Discounts:  NewDiscounts(store),

		Roles: NewRoles(store),
		Users: NewUsers(store),

		Expenses:  NewExpenses(store),
		Leads:     NewLeads(store),
		FollowUps: NewFollowUps(store),

		StockTransfers: NewStockTransfers(store),
		Adjustments:    NewAdjustments(store),
		StockLevels:    NewStockLevels(store),
	}
}
