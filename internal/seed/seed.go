// Package seed fills an empty store with demo listings.
package seed

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/store"
)

// Seeder inserts the sample listings.
type Seeder struct {
	store *store.Store
	cfg   Config
	log   *slog.Logger
}

// New creates a Seeder.
func New(log *slog.Logger, s *store.Store, cfg Config) *Seeder {
	return &Seeder{
		store: s,
		cfg:   cfg,
		log:   log.With("service", "seed"),
	}
}

// Run adds the samples when the store holds no listings and returns how
// many were added. With Reset set, existing listings are dropped first.
// With DryRun set, nothing is written. No notifications are emitted.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	samples := Samples()

	if s.cfg.DryRun {
		empty := s.cfg.Reset || len(s.store.ListProperties()) == 0
		s.log.InfoContext(ctx, "dry run",
			slog.Bool("would_seed", empty),
			slog.Int("samples", len(samples)),
		)
		return 0, nil
	}

	added := 0
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		if s.cfg.Reset {
			tx.Properties.Clear()
		}
		if tx.Properties.Len() > 0 {
			return nil
		}
		for _, data := range samples {
			tx.Properties.Create(domain.NewProperty{
				PropertyFormData: data,
				OwnerID:          s.cfg.OwnerID,
			})
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if added == 0 {
		s.log.InfoContext(ctx, "store not empty, skipping samples")
		return 0, nil
	}
	s.log.InfoContext(ctx, "sample listings added", slog.Int("count", added))
	return added, nil
}
