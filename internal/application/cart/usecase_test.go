package cart_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naxxivo/storefront-api/internal/application/cart"
	"github.com/naxxivo/storefront-api/internal/domain"
	"github.com/naxxivo/storefront-api/internal/domain/catalog"
	"github.com/naxxivo/storefront-api/internal/domain/entity"
	"github.com/naxxivo/storefront-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	items map[string]map[string]*entity.CartItem // userID -> productID -> item
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]map[string]*entity.CartItem)}
}

func (r *fakeCartRepo) GetItem(userID, productID string) (*entity.CartItem, error) {
	return r.items[userID][productID], nil
}

func (r *fakeCartRepo) ListByUser(userID string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, item := range r.items[userID] {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeCartRepo) Insert(item *entity.CartItem) error {
	if r.items[item.UserID] == nil {
		r.items[item.UserID] = make(map[string]*entity.CartItem)
	}
	r.items[item.UserID][item.ProductID] = item
	return nil
}

// fakeTxRunner ejecuta el callback directo sobre el repo (sin transacción real).
type fakeTxRunner struct{ repo repository.CartRepository }

func (t *fakeTxRunner) RunCart(fn func(repository.CartRepository) error) error {
	return fn(t.repo)
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func newCartUseCase(t *testing.T, products ...*entity.Product) (*cart.UseCase, *fakeCartRepo) {
	t.Helper()
	repo := newFakeCartRepo()
	byID := make(map[string]*entity.Product)
	for _, p := range products {
		byID[p.ID] = p
	}
	recent := cart.NewRecentTracker(50 * time.Millisecond)
	t.Cleanup(recent.Close)
	uc := cart.NewUseCase(&fakeTxRunner{repo: repo}, repo, &fakeProductRepo{byID: byID}, recent)
	return uc, repo
}

func activeProduct(id string) *entity.Product {
	return &entity.Product{ID: id, Price: decimal.NewFromInt(100), IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddToCart
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_Exitoso(t *testing.T) {
	uc, _ := newCartUseCase(t, activeProduct("p1"))

	out, err := uc.AddToCart("u1", "p1")

	require.NoError(t, err)
	assert.Equal(t, catalog.ButtonAdded, out.ButtonLabel,
		`tras el éxito el botón muestra "Added"`)
	assert.Equal(t, 1, out.CartCount)

	snap, err := uc.Snapshot("u1")
	require.NoError(t, err)
	assert.True(t, snap.Contains("p1"))
}

func TestAddToCart_DuplicadoRechazado(t *testing.T) {
	uc, _ := newCartUseCase(t, activeProduct("p1"))

	_, err := uc.AddToCart("u1", "p1")
	require.NoError(t, err)

	_, err = uc.AddToCart("u1", "p1")
	assert.ErrorIs(t, err, domain.ErrAlreadyInCart,
		"el guard de idempotencia no permite duplicar la línea desde este botón")
}

func TestAddToCart_SinSesion(t *testing.T) {
	uc, repo := newCartUseCase(t, activeProduct("p1"))

	_, err := uc.AddToCart("", "p1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, repo.items, "sin sesión no se emite ninguna mutación")
}

func TestAddToCart_ProductoInexistente(t *testing.T) {
	uc, _ := newCartUseCase(t)

	_, err := uc.AddToCart("u1", "p-404")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddToCart_ProductoInactivo(t *testing.T) {
	inactive := activeProduct("p1")
	inactive.IsActive = false
	uc, _ := newCartUseCase(t, inactive)

	_, err := uc.AddToCart("u1", "p1")

	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un producto retirado de la vitrina no se puede agregar")
}

func TestAddToCart_VentanaAddedRevierte(t *testing.T) {
	uc, _ := newCartUseCase(t, activeProduct("p1"))

	_, err := uc.AddToCart("u1", "p1")
	require.NoError(t, err)
	assert.True(t, uc.JustAdded("u1", "p1"))

	// Al expirar la ventana, la etiqueta cae a "In Cart" porque la membresía
	// ya reporta true.
	assert.Eventually(t, func() bool { return !uc.JustAdded("u1", "p1") },
		time.Second, 5*time.Millisecond)

	snap, err := uc.Snapshot("u1")
	require.NoError(t, err)
	assert.Equal(t, catalog.ButtonInCart,
		catalog.ButtonLabel(false, uc.JustAdded("u1", "p1"), snap.Contains("p1")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot / Contents
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_CuentaUnidades(t *testing.T) {
	uc, repo := newCartUseCase(t, activeProduct("p1"), activeProduct("p2"))
	now := time.Now()
	require.NoError(t, repo.Insert(&entity.CartItem{UserID: "u1", ProductID: "p1", Quantity: 2, CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.Insert(&entity.CartItem{UserID: "u1", ProductID: "p2", Quantity: 3, CreatedAt: now, UpdatedAt: now}))

	snap, err := uc.Snapshot("u1")

	require.NoError(t, err)
	assert.Equal(t, 5, snap.Count, "el badge suma cantidades, no líneas")
	assert.True(t, snap.Contains("p1"))
	assert.False(t, snap.Contains("p9"))
}

func TestSnapshot_AnonimoVacio(t *testing.T) {
	uc, _ := newCartUseCase(t)

	snap, err := uc.Snapshot("")

	require.NoError(t, err)
	assert.Equal(t, 0, snap.Count)
}

func TestContents_RequiereSesion(t *testing.T) {
	uc, _ := newCartUseCase(t)

	_, err := uc.Contents("")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
