// Package fetch implementa la capacidad de carga de datos de la vitrina:
// load(key, fetcher) -> {status: loading|error|data, value}, con cache por
// clave. Un fetch por clave; el estado de error queda cacheado y no se
// reintenta automáticamente (la recuperación es vía Invalidate explícito).
package fetch

import (
	"context"
	"sync"
)

// Status estado de un recurso cargado.
type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusData    Status = "data"
)

// Result resultado de una carga: estado + valor o error.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

type entry[T any] struct {
	done   chan struct{} // cerrado cuando el fetch resolvió
	result Result[T]
}

// Loader cache read-through por clave. Seguro para uso concurrente: el primer
// caller ejecuta el fetcher, los demás esperan el mismo resultado.
type Loader[T any] struct {
	mu      sync.Mutex
	entries map[string]*entry[T]
}

// NewLoader construye un loader vacío.
func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{entries: make(map[string]*entry[T])}
}

// Load devuelve el resultado cacheado para key, o ejecuta fetcher si es la
// primera carga. Bloquea hasta que el recurso resuelva a data o error, salvo
// que ctx termine antes (en cuyo caso el fetch en vuelo sigue y su resultado
// queda cacheado para el próximo caller).
func (l *Loader[T]) Load(ctx context.Context, key string, fetcher func(ctx context.Context) (T, error)) Result[T] {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry[T]{done: make(chan struct{})}
		l.entries[key] = e
		l.mu.Unlock()

		value, err := fetcher(context.WithoutCancel(ctx))
		if err != nil {
			e.result = Result[T]{Status: StatusError, Err: err}
		} else {
			e.result = Result[T]{Status: StatusData, Value: value}
		}
		close(e.done)
		return e.result
	}
	l.mu.Unlock()

	select {
	case <-e.done:
		return e.result
	case <-ctx.Done():
		var zero T
		return Result[T]{Status: StatusError, Value: zero, Err: ctx.Err()}
	}
}

// Peek devuelve el estado actual sin disparar una carga: loading si hay un
// fetch en vuelo, el resultado si ya resolvió, o loading "frío" si nunca se pidió.
func (l *Loader[T]) Peek(key string) Result[T] {
	l.mu.Lock()
	e, ok := l.entries[key]
	l.mu.Unlock()
	if !ok {
		return Result[T]{Status: StatusLoading}
	}
	select {
	case <-e.done:
		return e.result
	default:
		return Result[T]{Status: StatusLoading}
	}
}

// Invalidate descarta la entrada cacheada (data o error); la próxima Load
// vuelve a ejecutar el fetcher. Es la única vía de reintento.
func (l *Loader[T]) Invalidate(key string) {
	l.mu.Lock()
	delete(l.entries, key)
	l.mu.Unlock()
}
