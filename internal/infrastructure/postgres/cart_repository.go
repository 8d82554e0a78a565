package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/naxxivo/storefront-api/internal/domain"
	"github.com/naxxivo/storefront-api/internal/domain/entity"
	"github.com/naxxivo/storefront-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
// PK compuesta (user_id, product_id): una línea por producto.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetItem obtiene la línea del producto en el carrito del usuario. Devuelve nil si no hay.
func (r *CartRepo) GetItem(userID, productID string) (*entity.CartItem, error) {
	query := `
		SELECT user_id, product_id, quantity, created_at, updated_at
		FROM cart_items WHERE user_id = $1 AND product_id = $2`
	var item entity.CartItem
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}

// ListByUser lista las líneas del carrito del usuario.
func (r *CartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	query := `
		SELECT user_id, product_id, quantity, created_at, updated_at
		FROM cart_items WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Insert persiste una línea nueva. La PK compuesta convierte una carrera de
// dos clicks simultáneos en ErrAlreadyInCart.
func (r *CartRepo) Insert(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyInCart
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}
