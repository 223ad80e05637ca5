package listing

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/store"
)

// UpdateAndNotify patches a listing and announces the update. The
// notification is emitted even when the id is unknown; the returned error
// then wraps domain.ErrNotFound and the result still holds the notification.
func (s *Service) UpdateAndNotify(ctx context.Context, input UpdateInput) (UpdateResult, error) {
	user := s.ownerOrDefault(input.UserID)

	var res UpdateResult
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		title := titleOf(tx.Properties, input.ID)
		p, err := tx.Properties.Update(input.ID, input.Patch)
		res.Property = p
		res.Notification = tx.Notifications.Add(updatedPayload(title, input.ID, user))
		return err
	})

	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "update of unknown property",
			slog.String("property_id", input.ID),
			slog.String("notification_id", res.Notification.ID),
		)
		return res, err
	}
	if err != nil {
		return UpdateResult{}, err
	}

	s.log.InfoContext(ctx, "property updated",
		slog.String("property_id", input.ID),
		slog.String("user_id", user),
	)
	return res, nil
}
