package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/naxxivo/storefront-api/internal/application/auth"
	"github.com/naxxivo/storefront-api/internal/application/cart"
	"github.com/naxxivo/storefront-api/internal/application/storefront"
	"github.com/naxxivo/storefront-api/internal/application/wishlist"
	"github.com/naxxivo/storefront-api/internal/infrastructure/postgres"
	httpRouter "github.com/naxxivo/storefront-api/internal/interfaces/http"

	_ "github.com/naxxivo/storefront-api/docs"
	"github.com/naxxivo/storefront-api/pkg/config"
	"github.com/naxxivo/storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	wishlistRepo := postgres.NewWishlistRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recent := cart.NewRecentTracker(time.Duration(cfg.Storefront.AddedWindowMS) * time.Millisecond)
	defer recent.Close()

	cartUC := cart.NewUseCase(txRunner, cartRepo, productRepo, recent)
	wishlistUC := wishlist.NewUseCase(wishlistRepo)
	storefrontUC := storefront.NewUseCase(storefront.Deps{
		Products:        productRepo,
		Categories:      categoryRepo,
		Cart:            cartUC,
		Wishlist:        wishlistUC,
		Nav:             storefront.PathNavigator{},
		Prices:          storefront.NewPriceFormatter(cfg.Storefront.Locale, cfg.Storefront.Currency),
		PlaceholderBase: cfg.Storefront.PlaceholderBase,
	})
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StorefrontUC: storefrontUC,
		CartUC:       cartUC,
		WishlistUC:   wishlistUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
