package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"days-since/internal/domain/events"
)

const (
	keyPrefix = "days-since:event:"
	scanCount = 100

	fieldDescription = "description"
	fieldSince       = "since"
)

// EventsRepo guarda un Hash por evento en "days-since:event:{key plana}".
type EventsRepo struct {
	client *Client
}

func NewEventsRepo(client *Client) *EventsRepo {
	return &EventsRepo{client: client}
}

func (r *EventsRepo) Load(ctx context.Context, key events.Key) (events.Event, error) {
	fields, err := r.client.HGetAll(ctx, redisKey(key)).Result()
	if err != nil {
		return events.Event{}, fmt.Errorf("%w: load: %w", events.ErrStoreFailure, err)
	}
	if len(fields) == 0 {
		return events.Event{}, events.ErrNotFound
	}
	e, err := decodeEvent(fields)
	if err != nil {
		return events.Event{}, fmt.Errorf("%w: load: %w", events.ErrStoreFailure, err)
	}
	return e, nil
}

// Save usa un único HSET con ambos campos, así que es atómico por key.
func (r *EventsRepo) Save(ctx context.Context, key events.Key, e events.Event) error {
	if err := r.client.HSet(ctx, redisKey(key), encodeEvent(e)).Err(); err != nil {
		return fmt.Errorf("%w: save: %w", events.ErrStoreFailure, err)
	}
	return nil
}

func (r *EventsRepo) Remove(ctx context.Context, key events.Key) error {
	n, err := r.client.Del(ctx, redisKey(key)).Result()
	if err != nil {
		return fmt.Errorf("%w: remove: %w", events.ErrStoreFailure, err)
	}
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

// ListKeys recorre el keyspace con SCAN (no bloquea Redis como KEYS).
// Puede devolver duplicados si hay rehash durante el scan; se deduplican acá.
func (r *EventsRepo) ListKeys(ctx context.Context) ([]events.Key, error) {
	match := escapeGlob(keyPrefix) + "*"
	seen := map[string]struct{}{}
	out := make([]events.Key, 0)

	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, scanCount).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: list keys: %w", events.ErrStoreFailure, err)
		}
		for _, rk := range batch {
			if _, dup := seen[rk]; dup {
				continue
			}
			seen[rk] = struct{}{}

			k, ok := parseRedisKey(rk)
			if !ok {
				continue
			}
			out = append(out, k)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}

func redisKey(k events.Key) string {
	return keyPrefix + k.Flat()
}

func parseRedisKey(rk string) (events.Key, bool) {
	if !strings.HasPrefix(rk, keyPrefix) {
		return events.Key{}, false
	}
	k, err := events.ParseFlat(strings.TrimPrefix(rk, keyPrefix))
	if err != nil {
		return events.Key{}, false
	}
	return k, true
}

func encodeEvent(e events.Event) map[string]interface{} {
	return map[string]interface{}{
		fieldDescription: e.Description,
		fieldSince:       e.Since.UTC().Format(time.RFC3339Nano),
	}
}

func decodeEvent(fields map[string]string) (events.Event, error) {
	raw, ok := fields[fieldSince]
	if !ok {
		return events.Event{}, fmt.Errorf("missing %q field", fieldSince)
	}
	since, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return events.Event{}, fmt.Errorf("invalid %q field: %w", fieldSince, err)
	}
	return events.Event{
		Description: fields[fieldDescription],
		Since:       since.UTC(),
	}, nil
}

// escapeGlob escapa los metacaracteres del patrón de SCAN MATCH.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
