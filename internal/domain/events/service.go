package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"days-since/internal/platform/logger"
)

const secondsPerDay = 24 * 60 * 60

type Service struct {
	store Store
	log   logger.Logger
	now   func() time.Time
	locks *keyLocks
}

// NewService recibe el store compartido del proceso; log puede ser nil.
func NewService(store Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
		locks: &keyLocks{},
	}
}

func (s *Service) Create(ctx context.Context, communityID, name, text string) (Reply, error) {
	key, err := keyFor(communityID, name)
	if err != nil {
		return Reply{}, err
	}

	unlock := s.locks.lock(key)
	defer unlock()

	_, err = s.store.Load(ctx, key)
	switch {
	case err == nil:
		return Reply{}, ErrAlreadyExists
	case !errors.Is(err, ErrNotFound):
		return Reply{}, storeErr("load", err)
	}

	if err := s.store.Save(ctx, key, Event{Description: text, Since: s.timestamp()}); err != nil {
		return Reply{}, storeErr("save", err)
	}
	return publicReply("Event created."), nil
}

// Update reemplaza la descripción y conserva Since.
func (s *Service) Update(ctx context.Context, communityID, name, text string) (Reply, error) {
	key, err := keyFor(communityID, name)
	if err != nil {
		return Reply{}, err
	}

	unlock := s.locks.lock(key)
	defer unlock()

	existing, err := s.load(ctx, key)
	if err != nil {
		return Reply{}, err
	}

	existing.Description = text
	if err := s.store.Save(ctx, key, existing); err != nil {
		return Reply{}, storeErr("save", err)
	}
	return publicReply("Event updated."), nil
}

func (s *Service) DaysSince(ctx context.Context, communityID, name string) (Reply, error) {
	key, err := keyFor(communityID, name)
	if err != nil {
		return Reply{}, err
	}

	e, err := s.load(ctx, key)
	if err != nil {
		return Reply{}, err
	}

	n := DaysBetween(e.Since, s.now())
	return publicReply(fmt.Sprintf("It has been %d %s since %s.", n, dayUnit(n), e.Description)), nil
}

// Reset vuelve Since a ahora, conservando la descripción.
func (s *Service) Reset(ctx context.Context, communityID, name string) (Reply, error) {
	key, err := keyFor(communityID, name)
	if err != nil {
		return Reply{}, err
	}

	unlock := s.locks.lock(key)
	defer unlock()

	existing, err := s.load(ctx, key)
	if err != nil {
		return Reply{}, err
	}

	existing.Since = s.timestamp()
	if err := s.store.Save(ctx, key, existing); err != nil {
		return Reply{}, storeErr("save", err)
	}
	return publicReply(fmt.Sprintf("It has now been 0 days since %s.", existing.Description)), nil
}

func (s *Service) Remove(ctx context.Context, communityID, name string) (Reply, error) {
	key, err := keyFor(communityID, name)
	if err != nil {
		return Reply{}, err
	}

	unlock := s.locks.lock(key)
	defer unlock()

	if err := s.store.Remove(ctx, key); err != nil {
		return Reply{}, storeErr("remove", err)
	}
	return publicReply("Event removed."), nil
}

// List arma "name: description" por línea. Cualquier falla del store aborta el listado completo.
func (s *Service) List(ctx context.Context, communityID string) (Reply, error) {
	if strings.TrimSpace(communityID) == "" {
		return Reply{}, ErrInvalidContext
	}

	keys, err := s.communityKeys(ctx, communityID)
	if err != nil {
		return Reply{}, err
	}

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		e, err := s.store.Load(ctx, k)
		if err != nil {
			// Borrado entre ListKeys y Load: no es una falla del store.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return Reply{}, storeErr("load", err)
		}
		lines = append(lines, k.Name+": "+e.Description)
	}

	if len(lines) == 0 {
		return publicReply("No events found"), nil
	}
	return publicReply(strings.Join(lines, "\n")), nil
}

// AutocompleteName nunca falla: ante cualquier error devuelve una lista vacía.
func (s *Service) AutocompleteName(ctx context.Context, communityID, partial string) []string {
	if strings.TrimSpace(communityID) == "" {
		return []string{}
	}

	keys, err := s.communityKeys(ctx, communityID)
	if err != nil {
		s.log.Warn("autocomplete degraded to empty list", map[string]any{
			"community_id": communityID,
			"error":        err.Error(),
		})
		return []string{}
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.Contains(k.Name, partial) {
			out = append(out, k.Name)
		}
	}
	return out
}

// DaysBetween trunca hacia cero; un since en el futuro da un valor negativo.
// Trabaja en segundos Unix: time.Duration satura a ~292 años.
func DaysBetween(since, now time.Time) int64 {
	secs := now.Unix() - since.Unix()
	nanos := now.Nanosecond() - since.Nanosecond()
	switch {
	case secs > 0 && nanos < 0:
		secs--
	case secs < 0 && nanos > 0:
		secs++
	}
	return secs / secondsPerDay
}

func dayUnit(n int64) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

func (s *Service) load(ctx context.Context, key Key) (Event, error) {
	e, err := s.store.Load(ctx, key)
	if err != nil {
		return Event{}, storeErr("load", err)
	}
	return e, nil
}

func (s *Service) communityKeys(ctx context.Context, communityID string) ([]Key, error) {
	all, err := s.store.ListKeys(ctx)
	if err != nil {
		return nil, storeErr("list keys", err)
	}

	out := make([]Key, 0)
	for _, k := range all {
		if k.CommunityID == communityID {
			out = append(out, k)
		}
	}
	return out, nil
}

// timestamp usa resolución de microsegundos: es lo que preservan todos los backends.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func keyFor(communityID, name string) (Key, error) {
	if strings.TrimSpace(communityID) == "" {
		return Key{}, ErrInvalidContext
	}
	if strings.TrimSpace(name) == "" {
		return Key{}, ErrInvalidInput
	}
	return NewKey(communityID, name), nil
}

// storeErr deja pasar ErrNotFound y envuelve el resto como ErrStoreFailure.
func storeErr(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStoreFailure) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreFailure, op, err)
}
