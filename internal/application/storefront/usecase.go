// Package storefront arma los view-models de la vitrina: la pantalla de
// catálogo (navegación de categorías + grilla de tarjetas) y la tarjeta de
// producto individual. Todo valor derivado (descuento, rating, membresías,
// etiqueta del botón, links) sale resuelto de aquí; el cliente solo renderiza.
package storefront

import (
	"context"
	"fmt"

	"github.com/naxxivo/storefront-api/internal/application/cart"
	"github.com/naxxivo/storefront-api/internal/application/dto"
	"github.com/naxxivo/storefront-api/internal/application/fetch"
	"github.com/naxxivo/storefront-api/internal/application/wishlist"
	"github.com/naxxivo/storefront-api/internal/domain"
	"github.com/naxxivo/storefront-api/internal/domain/catalog"
	"github.com/naxxivo/storefront-api/internal/domain/entity"
	"github.com/naxxivo/storefront-api/internal/domain/repository"
)

// Cantidad fija de placeholders que el cliente renderiza mientras carga cada fuente.
const (
	SkeletonCategoryCount = 6
	SkeletonProductCount  = 8
)

// EmptyCategoryMessage mensaje cuando el filtro activo no deja productos.
const EmptyCategoryMessage = "No products in this category"

// Claves de cache del loader de catálogo.
const (
	catalogKey    = "catalog"
	categoriesKey = "categories"
)

// Session identidad de la request. El zero value es un visitante anónimo.
type Session struct {
	UserID  string
	IsAdmin bool
}

// Deps dependencias del caso de uso.
type Deps struct {
	Products        repository.ProductRepository
	Categories      repository.CategoryRepository
	Cart            *cart.UseCase
	Wishlist        *wishlist.UseCase
	Nav             Navigator
	Prices          *PriceFormatter
	PlaceholderBase string
}

// UseCase arma la pantalla de catálogo y las tarjetas de producto.
type UseCase struct {
	deps           Deps
	catalogLoader  *fetch.Loader[[]*entity.Product]
	categoryLoader *fetch.Loader[[]*entity.Category]
}

// NewUseCase construye el caso de uso con loaders de cache propios.
func NewUseCase(deps Deps) *UseCase {
	return &UseCase{
		deps:           deps,
		catalogLoader:  fetch.NewLoader[[]*entity.Product](),
		categoryLoader: fetch.NewLoader[[]*entity.Category](),
	}
}

// Listing arma la pantalla completa para el filtro activo. Cambiar de filtro
// no dispara un nuevo fetch: el catálogo ya cargado se filtra en memoria.
// Una falla de carga es terminal (ErrCatalogUnavailable): el handler muestra
// el mensaje en lugar de la grilla y no hay retry automático.
func (uc *UseCase) Listing(ctx context.Context, sess Session, activeCategory string) (*dto.ListingResponse, error) {
	if activeCategory == "" {
		activeCategory = catalog.CategoryAll
	}

	catRes := uc.categoryLoader.Load(ctx, categoriesKey, func(ctx context.Context) ([]*entity.Category, error) {
		return uc.deps.Categories.ListAll()
	})
	if catRes.Err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, catRes.Err)
	}
	prodRes := uc.catalogLoader.Load(ctx, catalogKey, func(ctx context.Context) ([]*entity.Product, error) {
		return uc.deps.Products.ListActive()
	})
	if prodRes.Err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, prodRes.Err)
	}

	cartSnap, err := uc.deps.Cart.Snapshot(sess.UserID)
	if err != nil {
		return nil, err
	}
	wishSnap, err := uc.deps.Wishlist.Snapshot(sess.UserID)
	if err != nil {
		return nil, err
	}

	filtered := catalog.FilterByCategory(prodRes.Value, activeCategory)

	out := &dto.ListingResponse{
		Categories:     buildCategoryNav(catRes.Value, activeCategory),
		Products:       make([]dto.ProductCardResponse, 0, len(filtered)),
		ActiveCategory: activeCategory,
		CartCount:      cartSnap.Count,
		Skeletons: dto.SkeletonHints{
			Categories: SkeletonCategoryCount,
			Products:   SkeletonProductCount,
		},
		Links: uc.screenLinks(sess),
	}
	for i, p := range filtered {
		out.Products = append(out.Products, uc.buildCard(sess, p, i, cartSnap, wishSnap))
	}
	if len(filtered) == 0 {
		out.EmptyMessage = EmptyCategoryMessage
	}
	return out, nil
}

// Card arma la tarjeta de un producto. Devuelve nil si el producto no existe
// o no está publicado.
func (uc *UseCase) Card(ctx context.Context, sess Session, productID string) (*dto.ProductCardResponse, error) {
	product, err := uc.deps.Products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, nil
	}

	cartSnap, err := uc.deps.Cart.Snapshot(sess.UserID)
	if err != nil {
		return nil, err
	}
	wishSnap, err := uc.deps.Wishlist.Snapshot(sess.UserID)
	if err != nil {
		return nil, err
	}

	card := uc.buildCard(sess, product, 0, cartSnap, wishSnap)
	return &card, nil
}

// InvalidateCatalog descarta el cache de catálogo y categorías; la próxima
// lectura vuelve a la DB. Lo dispara el panel de administración tras publicar
// cambios.
func (uc *UseCase) InvalidateCatalog() {
	uc.catalogLoader.Invalidate(catalogKey)
	uc.categoryLoader.Invalidate(categoriesKey)
}

// buildCategoryNav antepone la pseudo-categoría "All" a la lista navegable.
func buildCategoryNav(categories []*entity.Category, active string) []dto.CategoryNavItem {
	nav := make([]dto.CategoryNavItem, 0, len(categories)+1)
	nav = append(nav, dto.CategoryNavItem{
		Name:   catalog.CategoryAll,
		Active: active == catalog.CategoryAll,
	})
	for _, c := range categories {
		nav = append(nav, dto.CategoryNavItem{
			ID:     c.ID,
			Name:   c.Name,
			Active: c.Name == active,
		})
	}
	return nav
}

func (uc *UseCase) screenLinks(sess Session) dto.ScreenLinks {
	links := dto.ScreenLinks{
		Profile: uc.deps.Nav.ProfileURL(),
		Cart:    uc.deps.Nav.CartURL(),
	}
	// El acceso al panel solo se emite para administradores.
	if sess.IsAdmin {
		links.Admin = uc.deps.Nav.AdminURL()
	}
	return links
}

func (uc *UseCase) buildCard(sess Session, p *entity.Product, position int, cartSnap *cart.Snapshot, wishSnap map[string]bool) dto.ProductCardResponse {
	hasDiscount := catalog.HasDiscount(p.Price, p.OriginalPrice)
	rating := catalog.DeriveRating(p.ID, p.Price)
	inCart := cartSnap.Contains(p.ID)
	justAdded := uc.deps.Cart.JustAdded(sess.UserID, p.ID)

	card := dto.ProductCardResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.CategoryName,
		Price:        p.Price,
		DisplayPrice: uc.deps.Prices.Format(p.Price),
		HasDiscount:  hasDiscount,
		ImageURL:     catalog.ImageURL(uc.deps.PlaceholderBase, p.ID, p.ImageURL),
		// El cliente sustituye con esta URL cuando la imagen real falla al cargar.
		FallbackImageURL: catalog.FallbackImageURL(uc.deps.PlaceholderBase, p.ID),
		Rating:           rating.Score,
		Reviews:          rating.Reviews,
		InCart:           inCart,
		Wishlisted:       wishSnap[p.ID],
		// Pending nunca viaja en el view-model: es el estado local del cliente
		// mientras su mutación está en vuelo.
		ButtonLabel: catalog.ButtonLabel(false, justAdded, inCart),
		Position:    position,
		Links: dto.CardLinks{
			Detail:   uc.deps.Nav.DetailURL(p.ID),
			Checkout: uc.deps.Nav.CheckoutURL(p.ID),
		},
	}
	if hasDiscount {
		pct := catalog.DiscountPercentage(p.Price, p.OriginalPrice)
		card.OriginalPrice = p.OriginalPrice
		card.DisplayOriginalPrice = uc.deps.Prices.Format(*p.OriginalPrice)
		card.DiscountPercentage = pct
		card.DiscountBadge = fmt.Sprintf("%d%% OFF", pct)
	}
	return card
}
