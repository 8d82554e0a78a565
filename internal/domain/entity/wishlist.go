package entity

import "time"

// WishlistItem representa un producto guardado en la lista de deseos de un usuario.
type WishlistItem struct {
	UserID    string
	ProductID string
	CreatedAt time.Time
}
