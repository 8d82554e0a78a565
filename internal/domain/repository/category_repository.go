package repository

import "github.com/naxxivo/storefront-api/internal/domain/entity"

// CategoryRepository define el puerto de lectura de categorías (DIP).
type CategoryRepository interface {
	// ListAll devuelve todas las categorías ordenadas por nombre ascendente.
	ListAll() ([]*entity.Category, error)
}
