// Package store is the root state container for listings and notifications.
//
// A Store owns one property collection and one notification log behind a
// single lock. Every mutating unit of work runs under that lock, and the
// whole tree is written to the backend once per unit that changed anything.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/state/notification"
	"github.com/heartmarshall/hearthhub/internal/state/property"
)

// DefaultKey is the backend key the state tree is stored under.
const DefaultKey = "persist:root"

// DefaultSaveTimeout bounds a single backend write.
const DefaultSaveTimeout = 5 * time.Second

// Backend is a key-value store holding one serialized state tree.
// Load returns domain.ErrNotFound when nothing has been saved under key.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// Config holds store settings. Zero values fall back to defaults.
type Config struct {
	Key             string
	SaveTimeout     time.Duration
	NotificationCap int
	DefaultOwnerID  string

	// Now overrides the clock for both collections.
	Now func() time.Time
}

// Event tells subscribers which collections changed.
type Event struct {
	Properties    bool
	Notifications bool
}

// Tx gives a unit of work direct access to both collections.
// It must not be retained after the unit returns.
type Tx struct {
	Properties    *property.Collection
	Notifications *notification.Log
}

// Snapshot is a consistent read-only view of the state tree. Its slices
// are shared with the store and must not be modified.
type Snapshot struct {
	Properties       []domain.Property
	PropertiesRev    uint64
	Notifications    []domain.Notification
	NotificationsRev uint64
	UnreadCount      int
	Result           domain.OperationResult
}

// Store is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	props *property.Collection
	notes *notification.Log

	backend     Backend
	key         string
	saveTimeout time.Duration
	log         *slog.Logger

	subsMu  sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// New creates an empty store. Call Rehydrate to load persisted state.
func New(log *slog.Logger, backend Backend, cfg Config) *Store {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = DefaultSaveTimeout
	}

	propOpts := []property.Option{property.WithDefaultOwner(cfg.DefaultOwnerID)}
	noteOpts := []notification.Option{notification.WithCapacity(cfg.NotificationCap)}
	if cfg.Now != nil {
		propOpts = append(propOpts, property.WithClock(cfg.Now))
		noteOpts = append(noteOpts, notification.WithClock(cfg.Now))
	}

	return &Store{
		props:       property.New(propOpts...),
		notes:       notification.New(noteOpts...),
		backend:     backend,
		key:         cfg.Key,
		saveTimeout: cfg.SaveTimeout,
		log:         log.With("component", "store"),
		subs:        make(map[int]func(Event)),
	}
}

// Rehydrate replaces in-memory state with what the backend holds. A missing
// key leaves the store empty and is not an error.
func (s *Store) Rehydrate(ctx context.Context) error {
	payload, err := s.backend.Load(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.DebugContext(ctx, "no persisted state", slog.String("key", s.key))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	st, err := Decode(payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.props.Load(st.Properties)
	s.notes.Load(st.Notifications)
	unread := s.notes.UnreadCount()
	s.mu.Unlock()

	s.log.InfoContext(ctx, "state rehydrated",
		slog.String("key", s.key),
		slog.Int("properties", len(st.Properties)),
		slog.Int("notifications", len(st.Notifications)),
		slog.Int("unread", unread),
	)

	s.publish(Event{Properties: true, Notifications: true})
	return nil
}

// Update runs fn as one atomic unit. If fn changed either collection the
// state tree is persisted before Update returns, and subscribers are told
// afterwards. Changes made by fn are kept even when it returns an error.
// Persistence failures are logged, not returned.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	propRev, noteRev := s.props.Rev(), s.notes.Rev()

	err := fn(&Tx{Properties: s.props, Notifications: s.notes})

	ev := Event{
		Properties:    s.props.Rev() != propRev,
		Notifications: s.notes.Rev() != noteRev,
	}
	if ev.Properties || ev.Notifications {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if ev.Properties || ev.Notifications {
		s.publish(ev)
	}
	return err
}

// View runs fn with a consistent snapshot under the read lock.
func (s *Store) View(fn func(Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.snapshotLocked())
}

// Snapshot returns the current state tree.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Flush writes the current state tree regardless of whether it changed.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveLocked(ctx)
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

func (s *Store) publish(ev Event) {
	s.subsMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Properties:       s.props.List(),
		PropertiesRev:    s.props.Rev(),
		Notifications:    s.notes.List(),
		NotificationsRev: s.notes.Rev(),
		UnreadCount:      s.notes.UnreadCount(),
		Result:           s.props.LastResult(),
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	if err := s.saveLocked(ctx); err != nil {
		s.log.ErrorContext(ctx, "persist state failed",
			slog.String("key", s.key),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Store) saveLocked(ctx context.Context) error {
	payload, err := Encode(s.props.List(), s.notes.List(), s.notes.UnreadCount())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.saveTimeout)
	defer cancel()

	if err := s.backend.Save(ctx, s.key, payload); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
