package events

import "context"

// Store es el contrato del almacenamiento durable de eventos.
// Load/Save/Remove sobre una misma key deben ser atómicos entre sí.
type Store interface {
	// Load devuelve ErrNotFound si la key no existe.
	Load(ctx context.Context, key Key) (Event, error)
	// Save crea o sobrescribe.
	Save(ctx context.Context, key Key, e Event) error
	// Remove devuelve ErrNotFound si la key nunca existió.
	Remove(ctx context.Context, key Key) error
	// ListKeys devuelve todas las keys, sin orden garantizado.
	ListKeys(ctx context.Context) ([]Key, error)
}
