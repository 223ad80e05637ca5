package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hearthhub/internal/config"
	"github.com/heartmarshall/hearthhub/internal/geo"
	"github.com/heartmarshall/hearthhub/internal/selector"
	"github.com/heartmarshall/hearthhub/internal/service/listing"
	"github.com/heartmarshall/hearthhub/internal/service/notify"
	"github.com/heartmarshall/hearthhub/internal/store"
)

// App is the wired object graph: one store, its selectors and the services on top.
type App struct {
	Store         *store.Store
	Properties    *selector.Properties
	Notifications *selector.Notifications
	Listings      *listing.Service
	Notify        *notify.Service

	log          *slog.Logger
	closeBackend func() error
}

// Open connects the configured backend, rehydrates the store and wires services.
// A corrupt persisted payload is logged and the store starts empty.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	backend, closeBackend, err := OpenBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.Storage.Driver, err)
	}

	a, err := newApp(ctx, cfg, log, backend)
	if err != nil {
		_ = closeBackend()
		return nil, err
	}
	a.closeBackend = closeBackend
	return a, nil
}

func newApp(ctx context.Context, cfg *config.Config, log *slog.Logger, backend store.Backend) (*App, error) {
	st := store.New(log, backend, store.Config{
		Key:             cfg.Storage.Key,
		SaveTimeout:     cfg.Storage.SaveTimeout,
		NotificationCap: cfg.Store.NotificationCap,
		DefaultOwnerID:  cfg.Store.DefaultOwnerID,
	})

	if err := st.Rehydrate(ctx); err != nil {
		if !errors.Is(err, store.ErrCorruptState) {
			return nil, fmt.Errorf("rehydrate: %w", err)
		}
		log.WarnContext(ctx, "persisted state is corrupt, starting empty",
			slog.String("key", cfg.Storage.Key),
			slog.String("error", err.Error()),
		)
	}

	snap := st.Snapshot()
	log.InfoContext(ctx, "store ready",
		slog.String("driver", cfg.Storage.Driver),
		slog.Int("properties", len(snap.Properties)),
		slog.Int("notifications", len(snap.Notifications)),
		slog.Int("unread", snap.UnreadCount),
	)

	return &App{
		Store:         st,
		Properties:    selector.NewProperties(st, cfg.Store.RecentLimit),
		Notifications: selector.NewNotifications(st),
		Listings:      listing.NewService(log, st, geo.NewMapGenerator(nil), cfg.Store.DefaultOwnerID),
		Notify:        notify.NewService(log, st),
		log:           log,
		closeBackend:  noopClose,
	}, nil
}

// Close flushes the current state and releases the backend.
func (a *App) Close(ctx context.Context) error {
	flushErr := a.Store.Flush(ctx)
	if flushErr != nil {
		a.log.ErrorContext(ctx, "final flush failed", slog.String("error", flushErr.Error()))
	}
	return errors.Join(flushErr, a.closeBackend())
}
