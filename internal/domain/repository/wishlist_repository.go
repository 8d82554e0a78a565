package repository

// WishlistRepository define el puerto de persistencia de la lista de deseos (DIP).
// Add y Remove son idempotentes: repetir la operación no es un error.
type WishlistRepository interface {
	Add(userID, productID string) error
	Remove(userID, productID string) error
	Exists(userID, productID string) (bool, error)
	ListIDs(userID string) ([]string, error)
}
