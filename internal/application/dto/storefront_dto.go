package dto

import "github.com/shopspring/decimal"

// CategoryNavItem entrada de la navegación de categorías. La pseudo-categoría
// "All" va primera y no tiene ID de respaldo.
type CategoryNavItem struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// CardLinks destinos de navegación de una tarjeta: click en la tarjeta va al
// detalle; "buy now" va directo al checkout del producto.
type CardLinks struct {
	Detail   string `json:"detail"`
	Checkout string `json:"checkout"`
}

// ScreenLinks destinos de navegación del encabezado de la pantalla.
// Admin solo se emite cuando el perfil de la sesión es administrador.
type ScreenLinks struct {
	Profile string `json:"profile"`
	Cart    string `json:"cart"`
	Admin   string `json:"admin,omitempty"`
}

// SkeletonHints cantidad fija de placeholders que el cliente renderiza
// mientras espera cada fuente de datos.
type SkeletonHints struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
}

// ProductCardResponse view-model de una tarjeta de producto: todos los valores
// derivados (descuento, rating, membresías, etiqueta del botón) ya resueltos.
type ProductCardResponse struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Description          string           `json:"description,omitempty"`
	Category             string           `json:"category"`
	Price                decimal.Decimal  `json:"price"`
	DisplayPrice         string           `json:"display_price"`
	OriginalPrice        *decimal.Decimal `json:"original_price,omitempty"`
	DisplayOriginalPrice string           `json:"display_original_price,omitempty"` // tachado, solo con descuento
	HasDiscount          bool             `json:"has_discount"`
	DiscountPercentage   int              `json:"discount_percentage,omitempty"`
	DiscountBadge        string           `json:"discount_badge,omitempty"` // ej. "20% OFF"
	ImageURL             string           `json:"image_url"`
	FallbackImageURL     string           `json:"fallback_image_url"`
	Rating               float64          `json:"rating"`
	Reviews              int              `json:"reviews"`
	InCart               bool             `json:"in_cart"`
	Wishlisted           bool             `json:"wishlisted"`
	ButtonLabel          string           `json:"button_label"`
	Position             int              `json:"position"`
	Links                CardLinks        `json:"links"`
}

// ListingResponse view-model de la pantalla de catálogo completa.
type ListingResponse struct {
	Categories     []CategoryNavItem     `json:"categories"`
	Products       []ProductCardResponse `json:"products"`
	ActiveCategory string                `json:"active_category"`
	EmptyMessage   string                `json:"empty_message,omitempty"`
	CartCount      int                   `json:"cart_count"`
	Skeletons      SkeletonHints         `json:"skeletons"`
	Links          ScreenLinks           `json:"links"`
}
