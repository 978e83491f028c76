package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto. SKU vacío al
// crear genera uno a partir del nombre.
type ProductRequest struct {
	Name                string          `json:"name" validate:"required,min=1,max=200"`
	SKU                 string          `json:"sku" validate:"omitempty,max=100"`
	BarcodeType         string          `json:"barcode_type"`
	Unit                string          `json:"unit"`
	Brand               string          `json:"brand"`
	Category            string          `json:"category"`
	SubCategory         string          `json:"sub_category"`
	ManageStock         bool            `json:"manage_stock"`
	AlertQuantity       decimal.Decimal `json:"alert_quantity"`
	Description         string          `json:"description"`
	NotForSelling       bool            `json:"not_for_selling"`
	Weight              decimal.Decimal `json:"weight"`
	ApplicableTax       string          `json:"applicable_tax"`
	SellingPriceTaxType string          `json:"selling_price_tax_type"`
	ProductType         string          `json:"product_type"`
	PurchasePriceExcTax decimal.Decimal `json:"purchase_price_exc_tax"`
	PurchasePriceIncTax decimal.Decimal `json:"purchase_price_inc_tax"`
	MarginPercentage    decimal.Decimal `json:"margin_percentage"`
	SellingPriceExcTax  decimal.Decimal `json:"selling_price_exc_tax"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	SKU                 string          `json:"sku"`
	BarcodeType         string          `json:"barcode_type"`
	Unit                string          `json:"unit"`
	Brand               string          `json:"brand"`
	Category            string          `json:"category"`
	SubCategory         string          `json:"sub_category"`
	ManageStock         bool            `json:"manage_stock"`
	AlertQuantity       decimal.Decimal `json:"alert_quantity"`
	Description         string          `json:"description"`
	NotForSelling       bool            `json:"not_for_selling"`
	Weight              decimal.Decimal `json:"weight"`
	ApplicableTax       string          `json:"applicable_tax"`
	SellingPriceTaxType string          `json:"selling_price_tax_type"`
	ProductType         string          `json:"product_type"`
	PurchasePriceExcTax decimal.Decimal `json:"purchase_price_exc_tax"`
	PurchasePriceIncTax decimal.Decimal `json:"purchase_price_inc_tax"`
	MarginPercentage    decimal.Decimal `json:"margin_percentage"`
	SellingPriceExcTax  decimal.Decimal `json:"selling_price_exc_tax"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ProductListResponse página de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Meta  ListMeta          `json:"meta"`
}
