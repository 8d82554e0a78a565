package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/naxxivo/storefront-api/internal/domain/catalog"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// HasDiscount: badge solo cuando el precio original es estrictamente mayor.
// ──────────────────────────────────────────────────────────────────────────────

func TestHasDiscount_SinPrecioOriginal(t *testing.T) {
	assert.False(t, catalog.HasDiscount(dec(100), nil),
		"sin precio original no hay descuento")
}

func TestHasDiscount_PrecioOriginalIgual(t *testing.T) {
	// Escenario: {price: 100, original_price: 100} -> sin badge, sin tachado.
	assert.False(t, catalog.HasDiscount(dec(100), decPtr(100)),
		"precio original igual al actual no es descuento")
}

func TestHasDiscount_PrecioOriginalMenor(t *testing.T) {
	assert.False(t, catalog.HasDiscount(dec(100), decPtr(90)),
		"precio original menor al actual no es descuento")
}

func TestHasDiscount_PrecioOriginalMayor(t *testing.T) {
	assert.True(t, catalog.HasDiscount(dec(80), decPtr(100)))
}

// ──────────────────────────────────────────────────────────────────────────────
// DiscountPercentage: round(100 * (original - precio) / original).
// ──────────────────────────────────────────────────────────────────────────────

func TestDiscountPercentage_VeintePorciento(t *testing.T) {
	// Escenario: {price: 80, original_price: 100} -> badge "20% OFF".
	assert.Equal(t, 20, catalog.DiscountPercentage(dec(80), decPtr(100)))
}

func TestDiscountPercentage_Redondeo(t *testing.T) {
	// 100 -> 66.67: rebaja de 33.33% se redondea a 33.
	assert.Equal(t, 33, catalog.DiscountPercentage(dec(66.67), decPtr(100)))
	// 100 -> 66.50: rebaja de 33.5% se redondea a 34 (half up).
	assert.Equal(t, 34, catalog.DiscountPercentage(dec(66.50), decPtr(100)))
}

func TestDiscountPercentage_CeroSinDescuento(t *testing.T) {
	assert.Equal(t, 0, catalog.DiscountPercentage(dec(100), decPtr(100)))
	assert.Equal(t, 0, catalog.DiscountPercentage(dec(100), nil))
	assert.Equal(t, 0, catalog.DiscountPercentage(dec(120), decPtr(100)),
		"precio original menor no produce porcentaje negativo")
}

func TestDiscountPercentage_RangoValido(t *testing.T) {
	// Para cualquier par válido el porcentaje queda en [0, 100].
	cases := []struct {
		price, original float64
	}{
		{0.01, 1000}, {999.99, 1000}, {1, 2}, {50, 100},
	}
	for _, c := range cases {
		pct := catalog.DiscountPercentage(dec(c.price), decPtr(c.original))
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}
