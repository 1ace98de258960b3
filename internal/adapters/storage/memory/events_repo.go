package memory

import (
	"context"
	"sync"

	"days-since/internal/domain/events"
)

// eventRepo no es durable: sirve para modo dev y tests.
type eventRepo struct {
	mu    sync.RWMutex
	byKey map[events.Key]events.Event
}

func NewEventRepo() events.Store {
	return &eventRepo{
		byKey: make(map[events.Key]events.Event),
	}
}

func (r *eventRepo) Load(ctx context.Context, key events.Key) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byKey[key]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) Save(ctx context.Context, key events.Key, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byKey[key] = e
	return nil
}

func (r *eventRepo) Remove(ctx context.Context, key events.Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[key]; !ok {
		return events.ErrNotFound
	}
	delete(r.byKey, key)
	return nil
}

func (r *eventRepo) ListKeys(ctx context.Context) ([]events.Key, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Key, 0, len(r.byKey))
	for k := range r.byKey {
		out = append(out, k)
	}
	return out, nil
}
