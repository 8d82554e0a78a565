package repository

import "github.com/naxxivo/storefront-api/internal/domain/entity"

// CartRepository define el puerto de persistencia del carrito (DIP).
type CartRepository interface {
	GetItem(userID, productID string) (*entity.CartItem, error)
	ListByUser(userID string) ([]*entity.CartItem, error)
	Insert(item *entity.CartItem) error
}
