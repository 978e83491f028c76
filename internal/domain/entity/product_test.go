package entity

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSKU_NombreMultibyte(t *testing.T) {
	sku := GenerateSKU("Ñoño grande")
	assert.True(t, utf8.ValidString(sku), "el SKU debe ser UTF-8 válido: %q", sku)
	assert.True(t, strings.HasPrefix(sku, "ÑOÑO-"), "prefijo inesperado: %q", sku)
}

func TestGenerateSKU_NombreVacioUsaPROD(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateSKU(""), "PROD-"))
	assert.True(t, strings.HasPrefix(GenerateSKU("   "), "PROD-"))
}

func TestGenerateSKU_NombreCortoCompleto(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateSKU("Té"), "TÉ-"))
}
