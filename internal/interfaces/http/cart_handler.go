package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/naxxivo/storefront-api/internal/application/cart"
	"github.com/naxxivo/storefront-api/internal/application/dto"
	"github.com/naxxivo/storefront-api/internal/domain"
)

// CartHandler maneja el carrito del usuario autenticado.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler de carrito.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Carrito del usuario
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CartResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Contents(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "requiere sesión"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  Agrega una línea con cantidad 1. Si el producto ya está en el carrito responde 409 y el botón queda "In Cart".
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddToCartRequest  true  "product_id"
// @Success      201   {object}  dto.AddToCartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}
	out, err := h.uc.AddToCart(GetUserID(c), in.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "requiere sesión"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrAlreadyInCart):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_IN_CART", Message: "el producto ya está en el carrito"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
