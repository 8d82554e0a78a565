package wishlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naxxivo/storefront-api/internal/application/wishlist"
)

// fakeWishlistRepo cuenta mutaciones para verificar el no-op sin sesión.
type fakeWishlistRepo struct {
	sets      map[string]map[string]bool // userID -> productID
	mutations int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{sets: make(map[string]map[string]bool)}
}

func (r *fakeWishlistRepo) Add(userID, productID string) error {
	r.mutations++
	if r.sets[userID] == nil {
		r.sets[userID] = make(map[string]bool)
	}
	r.sets[userID][productID] = true
	return nil
}

func (r *fakeWishlistRepo) Remove(userID, productID string) error {
	r.mutations++
	delete(r.sets[userID], productID)
	return nil
}

func (r *fakeWishlistRepo) Exists(userID, productID string) (bool, error) {
	return r.sets[userID][productID], nil
}

func (r *fakeWishlistRepo) ListIDs(userID string) ([]string, error) {
	var ids []string
	for id := range r.sets[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestToggle_SinSesionEsNoOp(t *testing.T) {
	repo := newFakeWishlistRepo()
	uc := wishlist.NewUseCase(repo)

	out, err := uc.Toggle("", "p1")

	require.NoError(t, err)
	assert.False(t, out.Wishlisted)
	assert.Zero(t, repo.mutations, "sin sesión no se emite ninguna mutación")
}

func TestToggle_AgregaYQuita(t *testing.T) {
	repo := newFakeWishlistRepo()
	uc := wishlist.NewUseCase(repo)

	out, err := uc.Toggle("u1", "p1")
	require.NoError(t, err)
	assert.True(t, out.Wishlisted)

	out, err = uc.Toggle("u1", "p1")
	require.NoError(t, err)
	assert.False(t, out.Wishlisted, "el segundo toggle quita el producto")

	set, err := uc.Snapshot("u1")
	require.NoError(t, err)
	assert.False(t, set["p1"])
}

func TestSnapshot_AnonimoVacio(t *testing.T) {
	repo := newFakeWishlistRepo()
	repo.sets["u1"] = map[string]bool{"p1": true}
	uc := wishlist.NewUseCase(repo)

	set, err := uc.Snapshot("")

	require.NoError(t, err)
	assert.Empty(t, set, "sin autenticación las tarjetas muestran no-wishlisted")
}
