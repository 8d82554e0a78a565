package postgres

import (
	"context"
	"fmt"

	"github.com/naxxivo/storefront-api/internal/domain/repository"
)

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

// WishlistRepo implementación del puerto WishlistRepository sobre PostgreSQL.
type WishlistRepo struct {
	q Querier
}

// NewWishlistRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWishlistRepository(q Querier) *WishlistRepo {
	return &WishlistRepo{q: q}
}

// Add agrega el producto a la lista. Idempotente: repetir no es error.
func (r *WishlistRepo) Add(userID, productID string) error {
	query := `
		INSERT INTO wishlist_items (user_id, product_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, product_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), query, userID, productID); err != nil {
		return fmt.Errorf("add wishlist item: %w", err)
	}
	return nil
}

// Remove quita el producto de la lista. Idempotente: quitar lo ausente no es error.
func (r *WishlistRepo) Remove(userID, productID string) error {
	query := `DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`
	if _, err := r.q.Exec(context.Background(), query, userID, productID); err != nil {
		return fmt.Errorf("remove wishlist item: %w", err)
	}
	return nil
}

// Exists indica si el producto está en la lista del usuario.
func (r *WishlistRepo) Exists(userID, productID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("wishlist exists: %w", err)
	}
	return exists, nil
}

// ListIDs devuelve los ids de producto wishlisted del usuario.
func (r *WishlistRepo) ListIDs(userID string) ([]string, error) {
	query := `SELECT product_id FROM wishlist_items WHERE user_id = $1`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan wishlist item: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
