// Package wishlist caso de uso de la lista de deseos.
package wishlist

import (
	"github.com/naxxivo/storefront-api/internal/application/dto"
	"github.com/naxxivo/storefront-api/internal/domain/repository"
)

// UseCase toggle y lectura de la lista de deseos del usuario.
type UseCase struct {
	repo repository.WishlistRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.WishlistRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Toggle invierte la membresía del producto en la lista del usuario.
// Sin sesión es un no-op: no se emite ninguna mutación y el estado queda
// "no wishlisted". Con sesión: si está, se quita; si no está, se agrega.
func (uc *UseCase) Toggle(userID, productID string) (*dto.WishlistToggleResponse, error) {
	out := &dto.WishlistToggleResponse{ProductID: productID}
	if userID == "" {
		return out, nil
	}

	exists, err := uc.repo.Exists(userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		if err := uc.repo.Remove(userID, productID); err != nil {
			return nil, err
		}
		out.Wishlisted = false
		return out, nil
	}
	if err := uc.repo.Add(userID, productID); err != nil {
		return nil, err
	}
	out.Wishlisted = true
	return out, nil
}

// Snapshot devuelve el set de productos wishlisted del usuario. Sin sesión
// (o con la lista inaccesible) devuelve el set vacío: las tarjetas muestran
// "no wishlisted" por defecto.
func (uc *UseCase) Snapshot(userID string) (map[string]bool, error) {
	set := make(map[string]bool)
	if userID == "" {
		return set, nil
	}
	ids, err := uc.repo.ListIDs(userID)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
