package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naxxivo/storefront-api/internal/application/dto"
	"github.com/naxxivo/storefront-api/internal/application/wishlist"
)

// WishlistHandler maneja la lista de deseos.
type WishlistHandler struct {
	uc *wishlist.UseCase
}

// NewWishlistHandler construye el handler de wishlist.
func NewWishlistHandler(uc *wishlist.UseCase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// Toggle godoc
// @Summary      Alternar producto en la lista de deseos
// @Description  Agrega el producto si no está, lo quita si ya está. Sin sesión es un no-op silencioso.
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.WishlistToggleRequest  true  "product_id"
// @Success      200   {object}  dto.WishlistToggleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wishlist/toggle [post]
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	var in dto.WishlistToggleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.Toggle(GetUserID(c), in.ProductID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
