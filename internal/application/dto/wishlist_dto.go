package dto

// WishlistToggleRequest entrada del toggle de lista de deseos.
type WishlistToggleRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// WishlistToggleResponse estado resultante tras el toggle.
type WishlistToggleResponse struct {
	ProductID  string `json:"product_id"`
	Wishlisted bool   `json:"wishlisted"`
}
