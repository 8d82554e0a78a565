package dto

// AddToCartRequest entrada para agregar un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AddToCartResponse resultado del add: etiqueta resultante del botón y el
// nuevo total de unidades para el badge.
type AddToCartResponse struct {
	ProductID   string `json:"product_id"`
	ButtonLabel string `json:"button_label"`
	CartCount   int    `json:"cart_count"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartResponse carrito del usuario: líneas + total de unidades (badge).
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
}
