// Package listing composes listing mutations with the notifications that
// announce them. Each operation runs as one store unit, so the listing
// change and its notification are applied and persisted together.
package listing

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hearthhub/internal/geo"
	"github.com/heartmarshall/hearthhub/internal/state/property"
	"github.com/heartmarshall/hearthhub/internal/store"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type stateStore interface {
	Update(ctx context.Context, fn func(tx *store.Tx) error) error
}

type mapGenerator interface {
	Generate(location string) geo.Map
}

// Service provides create, update and delete with notifications.
type Service struct {
	store        stateStore
	maps         mapGenerator
	defaultOwner string
	log          *slog.Logger
}

// NewService creates a new listing service. An empty defaultOwner falls
// back to property.DefaultOwnerID.
func NewService(
	log *slog.Logger,
	st stateStore,
	maps mapGenerator,
	defaultOwner string,
) *Service {
	if defaultOwner == "" {
		defaultOwner = property.DefaultOwnerID
	}
	return &Service{
		store:        st,
		maps:         maps,
		defaultOwner: defaultOwner,
		log:          log.With("service", "listing"),
	}
}

func (s *Service) ownerOrDefault(id string) string {
	if id == "" {
		return s.defaultOwner
	}
	return id
}
