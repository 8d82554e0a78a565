package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naxxivo/storefront-api/internal/domain/catalog"
	"github.com/naxxivo/storefront-api/internal/domain/entity"
)

func productIn(id, categoryName string) *entity.Product {
	return &entity.Product{ID: id, CategoryName: categoryName, IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterByCategory: match exacto de strings; "All" es identidad.
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterByCategory_PorNombre(t *testing.T) {
	// Escenario: catálogo con "Shoes" y "Bags"; seleccionar "Shoes" deja solo Shoes.
	list := []*entity.Product{
		productIn("p1", "Shoes"),
		productIn("p2", "Bags"),
		productIn("p3", "Shoes"),
	}

	out := catalog.FilterByCategory(list, "Shoes")

	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p3", out[1].ID, "el filtro debe preservar el orden de entrada")
}

func TestFilterByCategory_AllDevuelveTodo(t *testing.T) {
	list := []*entity.Product{
		productIn("p1", "Shoes"),
		productIn("p2", "Bags"),
	}

	out := catalog.FilterByCategory(list, catalog.CategoryAll)

	assert.Equal(t, list, out, `"All" debe devolver la lista completa sin modificar`)
}

func TestFilterByCategory_FiltroVacioEsAll(t *testing.T) {
	list := []*entity.Product{productIn("p1", "Shoes")}
	assert.Equal(t, list, catalog.FilterByCategory(list, ""))
}

func TestFilterByCategory_Idempotente(t *testing.T) {
	// Volver a seleccionar la categoría activa no cambia el conjunto renderizado.
	list := []*entity.Product{
		productIn("p1", "Shoes"),
		productIn("p2", "Bags"),
	}

	first := catalog.FilterByCategory(list, "Shoes")
	second := catalog.FilterByCategory(first, "Shoes")

	assert.Equal(t, first, second)
}

func TestFilterByCategory_SinNormalizacion(t *testing.T) {
	// Comparación exacta: sin case-folding ni trims.
	list := []*entity.Product{productIn("p1", "Shoes")}

	assert.Empty(t, catalog.FilterByCategory(list, "shoes"))
	assert.Empty(t, catalog.FilterByCategory(list, "Shoes "))
}

func TestFilterByCategory_CategoriaSinProductos(t *testing.T) {
	list := []*entity.Product{productIn("p1", "Shoes")}
	assert.Empty(t, catalog.FilterByCategory(list, "Hats"))
}
