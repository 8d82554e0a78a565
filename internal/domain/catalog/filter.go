package catalog

import "github.com/naxxivo/storefront-api/internal/domain/entity"

// CategoryAll es la pseudo-categoría "sin filtro". No existe en DB: se inyecta
// al inicio de la navegación de categorías.
const CategoryAll = "All"

// FilterByCategory devuelve el subconjunto de productos cuya categoría coincide
// exactamente con el filtro (comparación de strings sin normalizar). Con el
// centinela "All" (o filtro vacío) devuelve la lista de entrada sin modificar,
// preservando el orden. Seleccionar de nuevo el filtro activo es idempotente.
func FilterByCategory(products []*entity.Product, category string) []*entity.Product {
	if category == "" || category == CategoryAll {
		return products
	}
	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryName == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
