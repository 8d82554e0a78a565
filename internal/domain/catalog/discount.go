// Package catalog: derivaciones puras de presentación de la vitrina
// (descuento, rating simulado, filtro por categoría, imagen de relleno).
// Ninguna función de este paquete toca red ni DB.

package catalog

import "github.com/shopspring/decimal"

// HasDiscount indica si el producto muestra badge de descuento: hay precio
// original y es estrictamente mayor que el precio actual. Precio original
// igual al actual no cuenta como descuento.
func HasDiscount(price decimal.Decimal, originalPrice *decimal.Decimal) bool {
	return originalPrice != nil && originalPrice.GreaterThan(price)
}

// DiscountPercentage calcula el porcentaje entero de rebaja:
// round(100 * (original - precio) / original). Devuelve 0 cuando no hay descuento.
func DiscountPercentage(price decimal.Decimal, originalPrice *decimal.Decimal) int {
	if !HasDiscount(price, originalPrice) {
		return 0
	}
	pct := originalPrice.Sub(price).
		Div(*originalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return int(pct.IntPart())
}
