package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/naxxivo/storefront-api/internal/application/dto"
	"github.com/naxxivo/storefront-api/internal/application/storefront"
	"github.com/naxxivo/storefront-api/internal/domain"
)

// StorefrontHandler sirve los view-models de la vitrina.
type StorefrontHandler struct {
	uc *storefront.UseCase
}

// NewStorefrontHandler construye el handler de vitrina.
func NewStorefrontHandler(uc *storefront.UseCase) *StorefrontHandler {
	return &StorefrontHandler{uc: uc}
}

func session(c *fiber.Ctx) storefront.Session {
	return storefront.Session{UserID: GetUserID(c), IsAdmin: GetIsAdmin(c)}
}

// Screen godoc
// @Summary      Pantalla de catálogo completa
// @Description  Navegación de categorías ("All" primero), grilla de tarjetas con valores derivados resueltos, badge de carrito y links de navegación.
// @Tags         storefront
// @Produce      json
// @Param        category  query  string  false  "filtro exacto por nombre de categoría; vacío o All = sin filtro"
// @Success      200  {object}  dto.ListingResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/storefront [get]
func (h *StorefrontHandler) Screen(c *fiber.Ctx) error {
	out, err := h.uc.Listing(c.Context(), session(c), c.Query("category"))
	if err != nil {
		return storefrontError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Tarjetas de producto del filtro activo
// @Tags         storefront
// @Produce      json
// @Param        category  query  string  false  "filtro exacto por nombre de categoría"
// @Success      200  {object}  dto.ListingResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/storefront/products [get]
func (h *StorefrontHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Listing(c.Context(), session(c), c.Query("category"))
	if err != nil {
		return storefrontError(c, err)
	}
	return c.JSON(out)
}

// Product godoc
// @Summary      Tarjeta de un producto
// @Tags         storefront
// @Produce      json
// @Param        id  path  string  true  "id de producto"
// @Success      200  {object}  dto.ProductCardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storefront/products/{id} [get]
func (h *StorefrontHandler) Product(c *fiber.Ctx) error {
	card, err := h.uc.Card(c.Context(), session(c), c.Params("id"))
	if err != nil {
		return storefrontError(c, err)
	}
	if card == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(card)
}

// Refresh godoc
// @Summary      Invalidar cache de catálogo
// @Description  Descarta el cache de productos y categorías; la próxima lectura vuelve a la DB. Solo administradores.
// @Tags         storefront
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/storefront/refresh [post]
func (h *StorefrontHandler) Refresh(c *fiber.Ctx) error {
	h.uc.InvalidateCatalog()
	return c.SendStatus(fiber.StatusNoContent)
}

// storefrontError mapea fallas de armado de vitrina. La falla de carga del
// catálogo es terminal: el cliente muestra el mensaje, sin retry automático.
func storefrontError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CATALOG_UNAVAILABLE", Message: "Failed to load products"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
