package event

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/domain/shared"
)

// InMemoryBus is a synchronous in-process event bus. Handlers run in
// the publisher's goroutine; a failing handler is logged and does not
// block the others.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	all      []shared.EventHandler
	log      *zap.Logger
	started  bool
}

// NewInMemoryBus creates a new in-memory event bus
func NewInMemoryBus(log *zap.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]shared.EventHandler),
		log:      log,
	}
}

// Publish delivers events to all matching handlers
func (b *InMemoryBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, evt := range events {
		targets := append([]shared.EventHandler{}, b.all...)
		targets = append(targets, b.handlers[evt.EventType()]...)
		for _, h := range targets {
			if err := h.Handle(ctx, evt); err != nil {
				b.log.Error("event handler failed",
					zap.String("event_type", evt.EventType()),
					zap.String("aggregate_id", evt.AggregateID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers a handler. Without event types the handler
// receives everything.
func (b *InMemoryBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	if len(eventTypes) == 0 {
		b.all = append(b.all, handler)
		return
	}
	for _, t := range eventTypes {
		b.handlers[t] = append(b.handlers[t], handler)
	}
}

// Unsubscribe removes a handler from all subscriptions
func (b *InMemoryBus) Unsubscribe(handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for t, hs := range b.handlers {
		b.handlers[t] = removeHandler(hs, handler)
	}
	b.all = removeHandler(b.all, handler)
}

func removeHandler(hs []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	out := hs[:0]
	for _, h := range hs {
		if h != target {
			out = append(out, h)
		}
	}
	return out
}

// Start marks the bus as running
func (b *InMemoryBus) Start(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = true
	return nil
}

// Stop marks the bus as stopped
func (b *InMemoryBus) Stop(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = false
	return nil
}
