package repository

import "github.com/naxxivo/storefront-api/internal/domain/entity"

// ProductRepository define el puerto de lectura de catálogo para la vitrina (DIP).
type ProductRepository interface {
	// ListActive devuelve los productos activos, más recientes primero,
	// cada uno con el nombre de su categoría resuelto.
	ListActive() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
}
