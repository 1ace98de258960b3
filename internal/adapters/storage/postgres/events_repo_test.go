package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"days-since/internal/domain/events"
)

// Requiere un Postgres real: TEST_DB_DSN=postgres://... go test ./...
func openTestRepo(t *testing.T) *EventsRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM community_events WHERE community_id LIKE 'test-%'`); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	return NewEventsRepo(db)
}

func TestEventsRepo_RoundTripAndScoping(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	since := time.Date(2026, 2, 1, 8, 30, 0, 123456000, time.UTC)
	k1 := events.NewKey("test-1", "a:b")
	k2 := events.NewKey("test-1:a", "b")

	if err := repo.Save(ctx, k1, events.Event{Description: "one", Since: since}); err != nil {
		t.Fatalf("save k1: %v", err)
	}
	if err := repo.Save(ctx, k2, events.Event{Description: "two", Since: since}); err != nil {
		t.Fatalf("save k2: %v", err)
	}

	got, err := repo.Load(ctx, k1)
	if err != nil {
		t.Fatalf("load k1: %v", err)
	}
	if got.Description != "one" || !got.Since.Equal(since) {
		t.Fatalf("unexpected record %+v", got)
	}

	if err := repo.Save(ctx, k1, events.Event{Description: "one v2", Since: since}); err != nil {
		t.Fatalf("upsert k1: %v", err)
	}
	got, _ = repo.Load(ctx, k1)
	if got.Description != "one v2" {
		t.Fatalf("upsert not applied: %+v", got)
	}

	if err := repo.Remove(ctx, k2); err != nil {
		t.Fatalf("remove k2: %v", err)
	}
	if err := repo.Remove(ctx, k2); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
