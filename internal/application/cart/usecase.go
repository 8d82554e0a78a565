// Package cart casos de uso del carrito: agregar con guard de idempotencia,
// snapshot de membresía para las tarjetas y flag transitorio "Added".
package cart

import (
	"time"

	"github.com/naxxivo/storefront-api/internal/application/dto"
	"github.com/naxxivo/storefront-api/internal/domain"
	"github.com/naxxivo/storefront-api/internal/domain/catalog"
	"github.com/naxxivo/storefront-api/internal/domain/entity"
	"github.com/naxxivo/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta el guard de duplicado y el insert dentro de una transacción,
// para que dos clicks simultáneos no dupliquen la línea.
type TxRunner interface {
	RunCart(fn func(cartRepo repository.CartRepository) error) error
}

// Snapshot lectura consistente del carrito de un usuario: membresía por
// producto y total de unidades para el badge. Solo lectura; las tarjetas no
// mutan estado compartido.
type Snapshot struct {
	Quantities map[string]int
	Count      int
}

// Contains indica si el producto tiene línea en el carrito.
func (s *Snapshot) Contains(productID string) bool {
	if s == nil {
		return false
	}
	return s.Quantities[productID] > 0
}

// UseCase casos de uso del carrito.
type UseCase struct {
	tx       TxRunner
	cartRepo repository.CartRepository
	products repository.ProductRepository
	recent   *RecentTracker
}

// NewUseCase construye el caso de uso. cartRepo se usa para lecturas; las
// escrituras pasan por el TxRunner.
func NewUseCase(tx TxRunner, cartRepo repository.CartRepository, products repository.ProductRepository, recent *RecentTracker) *UseCase {
	return &UseCase{tx: tx, cartRepo: cartRepo, products: products, recent: recent}
}

// AddToCart agrega el producto al carrito del usuario con cantidad 1.
// Guard de idempotencia: si ya hay línea para el producto devuelve
// ErrAlreadyInCart (el botón queda "In Cart", no interactivo). En éxito
// enciende la ventana "Added" de 2 segundos.
func (uc *UseCase) AddToCart(userID, productID string) (*dto.AddToCartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}

	err = uc.tx.RunCart(func(cartRepo repository.CartRepository) error {
		existing, err := cartRepo.GetItem(userID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrAlreadyInCart
		}
		now := time.Now()
		return cartRepo.Insert(&entity.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  1,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		// En falla la mutación resuelve a no-pendiente; el mensaje al usuario
		// es responsabilidad del caller.
		return nil, err
	}

	uc.recent.MarkAdded(userID, productID)

	snap, err := uc.Snapshot(userID)
	if err != nil {
		return nil, err
	}
	return &dto.AddToCartResponse{
		ProductID:   productID,
		ButtonLabel: catalog.ButtonLabel(false, true, snap.Contains(productID)),
		CartCount:   snap.Count,
	}, nil
}

// Snapshot devuelve la lectura del carrito del usuario. Sin sesión devuelve
// un snapshot vacío (la vitrina funciona anónima).
func (uc *UseCase) Snapshot(userID string) (*Snapshot, error) {
	snap := &Snapshot{Quantities: make(map[string]int)}
	if userID == "" {
		return snap, nil
	}
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		snap.Quantities[item.ProductID] = item.Quantity
		snap.Count += item.Quantity
	}
	return snap, nil
}

// Contents devuelve el carrito como DTO para GET /api/cart.
func (uc *UseCase) Contents(userID string) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, dto.CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
		out.Count += item.Quantity
	}
	return out, nil
}

// JustAdded expone el flag transitorio "Added" para el armado de tarjetas.
func (uc *UseCase) JustAdded(userID, productID string) bool {
	return uc.recent.JustAdded(userID, productID)
}
