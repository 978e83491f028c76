package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

func newSalesUseCase(t *testing.T) (*TradeUseCase, *service.Registry) {
	t.Helper()
	store := memory.New()
	t.Cleanup(store.Close)
	reg := service.NewRegistry(store)
	return NewTradeUseCase(reg.Sales, reg.Sales, reg.StockLevels), reg
}

func saleRequest() dto.TradeRequest {
	return dto.TradeRequest{
		Party:    "ACME",
		Date:     time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Location: "Central",
		Lines: []dto.LineItemRequest{
			{
				ProductID: "p1", ProductName: "Martillo",
				Quantity:  decimal.NewFromInt(2),
				UnitPrice: decimal.NewFromInt(50),
			},
		},
		DiscountType:    entity.DiscountPercentage,
		DiscountAmount:  decimal.NewFromInt(10),
		TaxRate:         decimal.NewFromInt(5),
		ShippingCharges: decimal.NewFromInt(20),
	}
}

// ── Totales calculados del lado del servidor ─────────────────────────────────

func TestTrade_CreateRecalculaTotales(t *testing.T) {
	uc, _ := newSalesUseCase(t)

	// S=100, desc 10%, imp 5%, envío 20 -> ((100-10)*1.05)+20 = 114.5
	out, err := uc.Create(context.Background(), saleRequest())
	require.NoError(t, err)
	assert.True(t, out.ItemsTotal.Equal(decimal.NewFromInt(100)), "items: %s", out.ItemsTotal)
	assert.True(t, out.GrandTotal.Equal(decimal.RequireFromString("114.5")), "total: %s", out.GrandTotal)
	assert.True(t, out.PaymentDue.Equal(decimal.RequireFromString("114.5")))
	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].Subtotal.Equal(decimal.NewFromInt(100)))
}

func TestTrade_SinLineasFalla(t *testing.T) {
	uc, _ := newSalesUseCase(t)
	in := saleRequest()
	in.Lines = nil
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrEmptyLines)
}

func TestTrade_CantidadNegativaFalla(t *testing.T) {
	uc, _ := newSalesUseCase(t)
	in := saleRequest()
	in.Lines[0].Quantity = decimal.NewFromInt(-1)
	_, err := uc.Create(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTrade_UpdateIgnoraTotalesDelCliente(t *testing.T) {
	uc, _ := newSalesUseCase(t)
	created, err := uc.Create(context.Background(), saleRequest())
	require.NoError(t, err)

	in := saleRequest()
	in.Lines[0].Quantity = decimal.NewFromInt(3) // S = 150
	out, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)
	// ((150-15)*1.05)+20 = 161.75
	assert.True(t, out.GrandTotal.Equal(decimal.RequireFromString("161.75")), "total: %s", out.GrandTotal)
}

func TestTrade_UpdateInexistenteFalla(t *testing.T) {
	uc, _ := newSalesUseCase(t)
	_, err := uc.Update(context.Background(), "no-existe", saleRequest())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Descuento de stock en ventas ─────────────────────────────────────────────

func TestTrade_VentaDescuentaStock(t *testing.T) {
	uc, reg := newSalesUseCase(t)

	lvlID, err := reg.StockLevels.Create(context.Background(), entity.StockLevel{
		ProductID: "p1", Location: "Central", Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	in := saleRequest()
	in.DecrementStock = true
	_, err = uc.Create(context.Background(), in)
	require.NoError(t, err)

	lvl, err := reg.StockLevels.Get(context.Background(), lvlID)
	require.NoError(t, err)
	assert.True(t, lvl.Quantity.Equal(decimal.NewFromInt(8)), "stock: %s", lvl.Quantity)
}

func TestTrade_VentaSinNivelPrevioCreaDeficit(t *testing.T) {
	uc, reg := newSalesUseCase(t)

	in := saleRequest()
	in.DecrementStock = true
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	levels, err := reg.StockLevels.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "p1", levels[0].ProductID)
	assert.True(t, levels[0].Quantity.Equal(decimal.NewFromInt(-2)))
}

func TestTrade_SinDecrementNoTocaStock(t *testing.T) {
	uc, reg := newSalesUseCase(t)
	_, err := uc.Create(context.Background(), saleRequest())
	require.NoError(t, err)

	levels, err := reg.StockLevels.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, levels)
}

// ── Conversión a venta ───────────────────────────────────────────────────────

func TestTrade_ConvertirCotizacionEnVenta(t *testing.T) {
	store := memory.New()
	defer store.Close()
	reg := service.NewRegistry(store)
	quotations := NewTradeUseCase(reg.Quotations, reg.Sales, nil)

	created, err := quotations.Create(context.Background(), saleRequest())
	require.NoError(t, err)

	sale, err := quotations.ConvertToSale(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, sale.ID)
	assert.True(t, sale.GrandTotal.Equal(decimal.RequireFromString("114.5")))

	// El origen desaparece y la venta existe en su colección.
	_, err = reg.Quotations.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	got, err := reg.Sales.Get(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, "ACME", got.Party)
}

func TestTrade_ConvertirSinDestinoFalla(t *testing.T) {
	store := memory.New()
	defer store.Close()
	reg := service.NewRegistry(store)
	purchases := NewTradeUseCase(reg.Purchases, nil, nil)

	created, err := purchases.Create(context.Background(), saleRequest())
	require.NoError(t, err)
	_, err = purchases.ConvertToSale(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrUnsupported)
}
