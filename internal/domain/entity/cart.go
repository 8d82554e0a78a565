package entity

import "time"

// CartItem representa una línea del carrito de un usuario.
// La vitrina solo necesita membresía (¿está el producto?) y el total de
// unidades para el badge; la línea completa vive aquí para el resto de la app.
type CartItem struct {
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
