package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
)

// ── CRUD tipado sobre el almacén en memoria ──────────────────────────────────

func TestService_CreateYGet(t *testing.T) {
	store := memory.New()
	defer store.Close()
	products := NewProducts(store)

	id, err := products.Create(context.Background(), entity.Product{
		Name:               "Martillo",
		SKU:                "MART-001",
		SellingPriceExcTax: decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := products.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Martillo", got.Name)
	assert.Equal(t, "MART-001", got.SKU)
	assert.True(t, got.SellingPriceExcTax.Equal(decimal.NewFromInt(25)))
}

func TestService_UpdateInexistenteFalla(t *testing.T) {
	store := memory.New()
	defer store.Close()
	products := NewProducts(store)

	err := products.Update(context.Background(), "no-existe", entity.Product{Name: "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_DeleteInexistenteEsNoOp(t *testing.T) {
	store := memory.New()
	defer store.Close()
	products := NewProducts(store)

	require.NoError(t, products.Delete(context.Background(), "no-existe"))
}

func TestRegistry_DevolucionesDeVentaSonColeccionPropia(t *testing.T) {
	store := memory.New()
	defer store.Close()
	reg := NewRegistry(store)

	id, err := reg.SellReturns.Create(context.Background(), entity.TradeDocument{
		Party: "Ana", ReferenceNo: "DEV-001",
	})
	require.NoError(t, err)

	// La devolución vive en su colección, no entre las ventas.
	got, err := reg.SellReturns.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "DEV-001", got.ReferenceNo)

	_, err = reg.Sales.Get(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)

	raw, err := store.Get(context.Background(), entity.TradeSellReturn, id)
	require.NoError(t, err)
	require.NotNil(t, raw)
}

// ── Suscripción en vivo ──────────────────────────────────────────────────────

func TestService_SubscribeAllEmiteListaCompleta(t *testing.T) {
	store := memory.New()
	defer store.Close()
	customers := NewCustomers(store)

	_, err := customers.Create(context.Background(), entity.Party{FirstName: "Ana"})
	require.NoError(t, err)

	ch := make(chan []entity.Party, 8)
	cancel := customers.SubscribeAll(func(items []entity.Party) {
		ch <- items
	}, func(err error) { t.Errorf("onError inesperado: %v", err) })
	defer cancel()

	first := nextEmission(t, ch)
	require.Len(t, first, 1)
	assert.Equal(t, "Ana", first[0].FirstName)

	_, err = customers.Create(context.Background(), entity.Party{FirstName: "Luis"})
	require.NoError(t, err)

	// Cada emisión reemplaza por completo la anterior.
	second := nextEmission(t, ch)
	require.Len(t, second, 2)
	assert.Equal(t, "Ana", second[0].FirstName)
	assert.Equal(t, "Luis", second[1].FirstName)
}

func TestService_SubscribeByIDEmiteNilAlBorrar(t *testing.T) {
	store := memory.New()
	defer store.Close()
	expenses := NewExpenses(store)

	id, err := expenses.Create(context.Background(), entity.Expense{Category: "Renta"})
	require.NoError(t, err)

	ch := make(chan *entity.Expense, 8)
	cancel := expenses.SubscribeByID(id, func(e *entity.Expense) {
		ch <- e
	}, func(err error) { t.Errorf("onError inesperado: %v", err) })
	defer cancel()

	first := nextEmission(t, ch)
	require.NotNil(t, first)
	assert.Equal(t, "Renta", first.Category)

	require.NoError(t, expenses.Delete(context.Background(), id))
	assert.Nil(t, nextEmission(t, ch))
}

func TestService_DocumentoMalFormadoReportaYDescarta(t *testing.T) {
	store := memory.New()
	defer store.Close()

	// Un producto sin nombre viola el campo requerido del codec.
	_, err := store.Add(context.Background(), "products", docstore.Document{"sku": "X-1"})
	require.NoError(t, err)

	products := NewProducts(store)
	dataCh := make(chan []entity.Product, 8)
	errCh := make(chan error, 8)
	cancel := products.SubscribeAll(func(items []entity.Product) {
		dataCh <- items
	}, func(err error) { errCh <- err })
	defer cancel()

	select {
	case err := <-errCh:
		var de *docstore.DecodeError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "products", de.Collection)
		assert.Equal(t, "productName", de.Field)
	case items := <-dataCh:
		t.Fatalf("se emitió data con documento indecodificable: %v", items)
	case <-time.After(2 * time.Second):
		t.Fatal("sin reporte de error de decodificación")
	}
}

// ── FetchAll (suscripción efímera) ───────────────────────────────────────────

func TestService_FetchAllDevuelveListaVigente(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := NewLeads(store)

	for _, name := range []string{"Uno", "Dos", "Tres"} {
		_, err := leads.Create(context.Background(), entity.Lead{Name: name})
		require.NoError(t, err)
	}

	got, err := leads.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Uno", got[0].Name)
	assert.Equal(t, "Tres", got[2].Name)
}

func TestService_FetchAllRespetaContexto(t *testing.T) {
	store := memory.New()
	defer store.Close()
	leads := NewLeads(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := leads.FetchAll(ctx)
	// Con el contexto ya cancelado puede ganar la emisión inicial o el Done;
	// solo se exige que no bloquee.
	_ = err
}

// ── Codec de documentos comerciales ──────────────────────────────────────────

func TestService_TradeRoundTripConLineas(t *testing.T) {
	store := memory.New()
	defer store.Close()
	sales := NewTrades(store, entity.TradeSale)

	date := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	id, err := sales.Create(context.Background(), entity.TradeDocument{
		Party:       "ACME",
		Date:        date,
		ReferenceNo: "V-0001",
		Lines: []entity.LineItem{
			{
				ProductID:   "p1",
				ProductName: "Martillo",
				Quantity:    decimal.NewFromInt(2),
				UnitPrice:   decimal.NewFromInt(50),
				Discount:    decimal.Zero,
				Subtotal:    decimal.NewFromInt(100),
			},
		},
		DiscountType:   entity.DiscountPercentage,
		DiscountAmount: decimal.NewFromInt(10),
		TaxRate:        decimal.NewFromInt(5),
		GrandTotal:     decimal.RequireFromString("114.5"),
	})
	require.NoError(t, err)

	got, err := sales.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Party)
	assert.True(t, got.Date.Equal(date))
	require.Len(t, got.Lines, 1)
	assert.Equal(t, "Martillo", got.Lines[0].ProductName)
	assert.True(t, got.Lines[0].Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.GrandTotal.Equal(decimal.RequireFromString("114.5")))
}

// ── Registro de servicios ────────────────────────────────────────────────────

func TestRegistry_ColeccionesIndependientes(t *testing.T) {
	store := memory.New()
	defer store.Close()
	reg := NewRegistry(store)

	assert.Equal(t, entity.TradeSale, reg.Sales.Collection())
	assert.Equal(t, entity.TradePurchase, reg.Purchases.Collection())
	assert.Equal(t, "customers", reg.Customers.Collection())
	assert.Equal(t, "suppliers", reg.Suppliers.Collection())

	// La misma entidad en dos colecciones no se mezcla.
	_, err := reg.Customers.Create(context.Background(), entity.Party{FirstName: "Ana"})
	require.NoError(t, err)
	suppliers, err := reg.Suppliers.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func nextEmission[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("sin emisión dentro del plazo")
		panic("unreachable")
	}
}
