package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naxxivo/storefront-api/internal/application/auth"
	"github.com/naxxivo/storefront-api/internal/application/cart"
	"github.com/naxxivo/storefront-api/internal/application/storefront"
	"github.com/naxxivo/storefront-api/internal/application/wishlist"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StorefrontUC *storefront.UseCase
	CartUC       *cart.UseCase
	WishlistUC   *wishlist.UseCase
	AuthUC       *auth.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Vitrina (público; con token opcional se resuelven membresías y link de admin)
	sf := api.Group("/storefront", OptionalAuth(deps.JWTSecret))
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC)
	sf.Get("/", storefrontHandler.Screen)
	sf.Get("/products", storefrontHandler.Products)
	sf.Get("/products/:id", storefrontHandler.Product)
	// Invalidación de cache tras publicar cambios (solo admin)
	sf.Post("/refresh", AuthMiddleware(deps.JWTSecret), RequireAdmin(), storefrontHandler.Refresh)

	// Carrito (requiere Bearer Token)
	cartGroup := api.Group("/cart", AuthMiddleware(deps.JWTSecret))
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.AddItem)

	// Wishlist (token opcional: sin sesión el toggle es no-op)
	wishGroup := api.Group("/wishlist", OptionalAuth(deps.JWTSecret))
	wishlistHandler := NewWishlistHandler(deps.WishlistUC)
	wishGroup.Post("/toggle", wishlistHandler.Toggle)
}
