package entity

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Los precios se recalculan
// siempre del lado del servidor; MarginPercentage relaciona compra y venta.
type Product struct {
	ID                  string
	Name                string
	SKU                 string // puede generarse a partir del nombre si llega vacío
	BarcodeType         string
	Unit                string
	Brand               string
	Category            string
	SubCategory         string
	ManageStock         bool
	AlertQuantity       decimal.Decimal
	Description         string
	NotForSelling       bool
	Weight              decimal.Decimal
	ApplicableTax       string
	SellingPriceTaxType string // "Inclusive" | "Exclusive"
	ProductType         string // "Single" | "Variable"
	PurchasePriceExcTax decimal.Decimal
	PurchasePriceIncTax decimal.Decimal
	MarginPercentage    decimal.Decimal
	SellingPriceExcTax  decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// GenerateSKU construye un SKU a partir del nombre del producto: prefijo
// alfanumérico + timestamp + sufijo aleatorio. Mismo esquema que usaba la
// pantalla de alta cuando el usuario dejaba el campo vacío.
func GenerateSKU(name string) string {
	// Corte por runas: un nombre multibyte no debe partir un carácter.
	runes := []rune(strings.ToUpper(strings.ReplaceAll(name, " ", "")))
	if len(runes) > 4 {
		runes = runes[:4]
	}
	prefix := string(runes)
	if prefix == "" {
		prefix = "PROD"
	}
	return fmt.Sprintf("%s-%d-%03d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}
