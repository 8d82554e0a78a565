package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/naxxivo/storefront-api/internal/application/cart"
	"github.com/naxxivo/storefront-api/internal/domain/repository"
)

var _ cart.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCart inicia una transacción, ejecuta fn con el repo de carrito atado a la
// tx y hace Commit o Rollback. Así el guard de duplicado y el insert del
// add-to-cart son atómicos.
func (r *TxRunner) RunCart(fn func(cartRepo repository.CartRepository) error) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCartRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
