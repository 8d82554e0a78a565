package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/naxxivo/storefront-api/internal/application/dto"
	"github.com/naxxivo/storefront-api/pkg/jwt"
)

// Locals keys para la identidad de la request en Fiber.
const (
	LocalUserID  = "user_id"
	LocalIsAdmin = "is_admin"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID e IsAdmin a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		userID, isAdmin, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalIsAdmin, isAdmin)
		return c.Next()
	}
}

// OptionalAuth parsea el Bearer Token si viene; sin header la request sigue
// como visitante anónimo. La vitrina se sirve igual con o sin sesión, solo
// cambian membresías de carrito/wishlist y el link de admin.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		tokenString, ok := bearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		userID, isAdmin, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			// Token presente pero inválido: no degradar a anónimo.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalIsAdmin, isAdmin)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a administradores. Usar después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetIsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "requiere rol de administrador"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto; "" si la request es anónima.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetIsAdmin devuelve el flag de admin del contexto.
func GetIsAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalIsAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
