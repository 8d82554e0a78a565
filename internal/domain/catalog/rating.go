package catalog

import (
	"hash/fnv"

	"github.com/shopspring/decimal"
)

// DerivedRating es el rating simulado de un producto: decorativo, no proviene
// de reseñas reales y no debe usarse para ordenar ni filtrar.
type DerivedRating struct {
	Score   float64 // en [4.0, 5.0), un decimal
	Reviews int
}

// DeriveRating genera un rating determinista a partir de id + precio:
// el mismo producto siempre muestra el mismo rating y cantidad de reseñas.
// Hash FNV-1a sobre "id|precio"; Score en {4.0, 4.1, ..., 4.9}, Reviews en [50, 550).
func DeriveRating(productID string, price decimal.Decimal) DerivedRating {
	h := fnv.New64a()
	h.Write([]byte(productID))
	h.Write([]byte("|"))
	h.Write([]byte(price.String()))
	sum := h.Sum64()

	return DerivedRating{
		Score:   4.0 + float64(sum%10)/10.0,
		Reviews: 50 + int((sum/10)%500),
	}
}
