package client

import (
	"context"
	"sync"
)

// ListView holds a fetched collection and its loading state. Refresh
// replaces the whole collection; there is no merging of server and
// local state. It is safe for concurrent use.
type ListView[T any] struct {
	fetch func(ctx context.Context) ([]T, error)

	mu      sync.RWMutex
	items   []T
	loading bool
	lastErr string
}

// NewListView creates a view over the given fetch function
func NewListView[T any](fetch func(ctx context.Context) ([]T, error)) *ListView[T] {
	return &ListView[T]{fetch: fetch}
}

// Refresh reloads the collection. The previous items stay visible
// until the fetch completes; on error they are kept and the error
// message recorded.
func (v *ListView[T]) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.lastErr = ""
	v.mu.Unlock()

	items, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.lastErr = errorMessage(err, "Unable to load data. Please try again.")
		return err
	}
	v.items = items
	return nil
}

// Items returns the current collection
func (v *ListView[T]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Loading reports whether a fetch is in flight
func (v *ListView[T]) Loading() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loading
}

// LastError returns the message of the most recent failed fetch, empty
// after a successful one
func (v *ListView[T]) LastError() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastErr
}

// find returns the first item matching the predicate
func (v *ListView[T]) find(match func(T) bool) (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, item := range v.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
