package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"days-since/internal/adapters/storage/sqlite/migrations"
	"days-since/internal/domain/events"
	"days-since/internal/platform/storage/sqlitemigrate"

	_ "modernc.org/sqlite"
)

// Store persiste eventos en un archivo SQLite. since se guarda en nanos unix
// para que el round trip sea exacto.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo y aplica las migraciones embebidas.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite: path is required")
	}
	dsn := filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context, key events.Key) (events.Event, error) {
	var (
		e     events.Event
		nanos int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT description, since_unix_nano
		FROM community_events
		WHERE community_id = ? AND name = ?
	`, key.CommunityID, key.Name).Scan(&e.Description, &nanos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, fmt.Errorf("%w: load: %w", events.ErrStoreFailure, err)
	}
	e.Since = time.Unix(0, nanos).UTC()
	return e, nil
}

func (s *Store) Save(ctx context.Context, key events.Key, e events.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO community_events (community_id, name, description, since_unix_nano)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (community_id, name) DO UPDATE
		SET description = excluded.description,
			since_unix_nano = excluded.since_unix_nano
	`, key.CommunityID, key.Name, e.Description, e.Since.UnixNano())
	if err != nil {
		return fmt.Errorf("%w: save: %w", events.ErrStoreFailure, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, key events.Key) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM community_events
		WHERE community_id = ? AND name = ?
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

func (s *Store) ListKeys(ctx context.Context) ([]events.Key, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT community_id, name FROM community_events`)
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
