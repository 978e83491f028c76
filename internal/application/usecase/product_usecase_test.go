package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/docstore/memory"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

func newProductUseCase(t *testing.T) *ProductUseCase {
	t.Helper()
	store := memory.New()
	t.Cleanup(store.Close)
	return NewProductUseCase(service.NewProducts(store))
}

func TestProduct_CreateAsignaID(t *testing.T) {
	uc := newProductUseCase(t)
	out, err := uc.Create(context.Background(), dto.ProductRequest{Name: "Martillo", SKU: "MART-001"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "MART-001", out.SKU)
}

func TestProduct_SKUVacioSeGenera(t *testing.T) {
	uc := newProductUseCase(t)
	out, err := uc.Create(context.Background(), dto.ProductRequest{Name: "Taladro industrial"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.SKU)
	assert.Contains(t, out.SKU, "TALA")
}

func TestProduct_SKURepetidoFalla(t *testing.T) {
	uc := newProductUseCase(t)
	_, err := uc.Create(context.Background(), dto.ProductRequest{Name: "Martillo", SKU: "MART-001"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.ProductRequest{Name: "Otro martillo", SKU: "MART-001"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_UpdateConservaCreatedAt(t *testing.T) {
	uc := newProductUseCase(t)
	created, err := uc.Create(context.Background(), dto.ProductRequest{Name: "Martillo", SKU: "M-1"})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.ProductRequest{Name: "Martillo grande", SKU: "M-1"})
	require.NoError(t, err)
	assert.Equal(t, "Martillo grande", updated.Name)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestProduct_SinNombreFalla(t *testing.T) {
	uc := newProductUseCase(t)
	_, err := uc.Create(context.Background(), dto.ProductRequest{SKU: "X"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
