package cart

import (
	"sync"
	"time"
)

// AddedWindow ventana por defecto del estado "Added" tras agregar al carrito.
const AddedWindow = 2 * time.Second

type recentKey struct {
	userID    string
	productID string
}

// RecentTracker mantiene el flag transitorio "recién agregado" por
// (usuario, producto). Un solo timer por clave: volver a agregar antes de que
// expire reinicia la ventana en lugar de apilar timers. Close cancela todo lo
// pendiente para que ningún callback dispare contra estado ya liberado.
type RecentTracker struct {
	mu     sync.Mutex
	window time.Duration
	timers map[recentKey]*time.Timer
	closed bool
}

// NewRecentTracker construye el tracker. window <= 0 usa AddedWindow (2s).
func NewRecentTracker(window time.Duration) *RecentTracker {
	if window <= 0 {
		window = AddedWindow
	}
	return &RecentTracker{
		window: window,
		timers: make(map[recentKey]*time.Timer),
	}
}

// MarkAdded enciende el flag para (userID, productID) y programa su apagado
// al expirar la ventana. Si ya había un timer en vuelo, se reinicia.
func (t *RecentTracker) MarkAdded(userID, productID string) {
	key := recentKey{userID: userID, productID: productID}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if prev, ok := t.timers[key]; ok {
		prev.Stop()
	}
	t.timers[key] = time.AfterFunc(t.window, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.timers, key)
	})
}

// JustAdded indica si (userID, productID) está dentro de la ventana "Added".
func (t *RecentTracker) JustAdded(userID, productID string) bool {
	key := recentKey{userID: userID, productID: productID}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.timers[key]
	return ok
}

// Close cancela todos los timers pendientes. Tras Close, MarkAdded es no-op.
func (t *RecentTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	for key, timer := range t.timers {
		timer.Stop()
		delete(t.timers, key)
	}
}
