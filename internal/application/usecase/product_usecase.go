package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// ProductUseCase casos de uso CRUD de productos sobre el servicio tipado.
type ProductUseCase struct {
	products *service.Service[entity.Product]
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products *service.Service[entity.Product]) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create crea un producto. SKU vacío genera uno a partir del nombre; SKU
// repetido devuelve ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SKU == "" {
		in.SKU = entity.GenerateSKU(in.Name)
	}
	existing, err := uc.products.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.SKU == in.SKU {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	product := productFromRequest(in)
	product.CreatedAt = now
	product.UpdatedAt = now
	id, err := uc.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reemplaza el producto completo; id inexistente -> ErrNotFound.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	product := productFromRequest(in)
	product.ID = id
	product.CreatedAt = current.CreatedAt
	product.UpdatedAt = time.Now()
	if product.SKU == "" {
		product.SKU = current.SKU
	}
	if err := uc.products.Update(ctx, id, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto; id inexistente es no-op.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.products.Delete(ctx, id)
}

// List devuelve la lista vigente completa (la paginación y búsqueda ocurren
// en la capa de listado).
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	items, err := uc.products.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func productFromRequest(in dto.ProductRequest) entity.Product {
	return entity.Product{
		Name:                in.Name,
		SKU:                 in.SKU,
		BarcodeType:         in.BarcodeType,
		Unit:                in.Unit,
		Brand:               in.Brand,
		Category:            in.Category,
		SubCategory:         in.SubCategory,
		ManageStock:         in.ManageStock,
		AlertQuantity:       in.AlertQuantity,
		Description:         in.Description,
		NotForSelling:       in.NotForSelling,
		Weight:              in.Weight,
		ApplicableTax:       in.ApplicableTax,
		SellingPriceTaxType: in.SellingPriceTaxType,
		ProductType:         in.ProductType,
		PurchasePriceExcTax: in.PurchasePriceExcTax,
		PurchasePriceIncTax: in.PurchasePriceIncTax,
		MarginPercentage:    in.MarginPercentage,
		SellingPriceExcTax:  in.SellingPriceExcTax,
	}
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		SKU:                 p.SKU,
		BarcodeType:         p.BarcodeType,
		Unit:                p.Unit,
		Brand:               p.Brand,
		Category:            p.Category,
		SubCategory:         p.SubCategory,
		ManageStock:         p.ManageStock,
		AlertQuantity:       p.AlertQuantity,
		Description:         p.Description,
		NotForSelling:       p.NotForSelling,
		Weight:              p.Weight,
		ApplicableTax:       p.ApplicableTax,
		SellingPriceTaxType: p.SellingPriceTaxType,
		ProductType:         p.ProductType,
		PurchasePriceExcTax: p.PurchasePriceExcTax,
		PurchasePriceIncTax: p.PurchasePriceIncTax,
		MarginPercentage:    p.MarginPercentage,
		SellingPriceExcTax:  p.SellingPriceExcTax,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
