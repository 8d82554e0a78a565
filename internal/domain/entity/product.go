package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado en la vitrina.
// OriginalPrice es el precio antes de descuento; solo se muestra tachado
// cuando es estrictamente mayor que Price. CategoryName viene del join con
// categories en las lecturas de catálogo.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal // nil = sin precio de referencia
	ImageURL      string           // vacío = usar imagen de relleno determinista
	CategoryID    string
	CategoryName  string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
