package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"days-since/internal/domain/events"
)

// EventsRepo guarda (community_id, name) como PK compuesta; no necesita la key plana.
type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Load(ctx context.Context, key events.Key) (events.Event, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT description, since
		FROM community_events
		WHERE community_id = $1 AND name = $2
	`, key.CommunityID, key.Name)

	var e events.Event
	if err := row.Scan(&e.Description, &e.Since); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, fmt.Errorf("%w: load: %w", events.ErrStoreFailure, err)
	}
	e.Since = e.Since.UTC()
	return e, nil
}

// Save es un upsert de una sola sentencia, atómico por fila.
func (r *EventsRepo) Save(ctx context.Context, key events.Key, e events.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO community_events (community_id, name, description, since)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (community_id, name) DO UPDATE
		SET description = EXCLUDED.description,
			since = EXCLUDED.since
	`,
		key.CommunityID,
		key.Name,
		e.Description,
		e.Since.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: save: %w", events.ErrStoreFailure, err)
	}
	return nil
}

func (r *EventsRepo) Remove(ctx context.Context, key events.Key) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM community_events
		WHERE community_id = $1 AND name = $2
	`, key.CommunityID, key.Name)
	if err != nil {
		return fmt.Errorf("%w: remove: %w", events.ErrStoreFailure, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: remove: %w", events.ErrStoreFailure, err)
	}
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func (r *EventsRepo) ListKeys(ctx context.Context) ([]events.Key, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT community_id, name FROM community_events`)
	if err != nil {
		return nil, fmt.Errorf("%w: list keys: %w", events.ErrStoreFailure, err)
	}
	defer rows.Close()

	out := make([]events.Key, 0)
	for rows.Next() {
		var k events.Key
		if err := rows.Scan(&k.CommunityID, &k.Name); err != nil {
			return nil, fmt.Errorf("%w: list keys: %w", events.ErrStoreFailure, err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list keys: %w", events.ErrStoreFailure, err)
	}
	return out, nil
}
