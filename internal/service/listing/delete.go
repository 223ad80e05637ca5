package listing

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/hearthhub/internal/domain"
	"github.com/heartmarshall/hearthhub/internal/store"
)

// DeleteAndNotify removes a listing and announces the removal. Like
// UpdateAndNotify, the notification is emitted even for an unknown id.
func (s *Service) DeleteAndNotify(ctx context.Context, input DeleteInput) (DeleteResult, error) {
	user := s.ownerOrDefault(input.UserID)

	var res DeleteResult
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		title := titleOf(tx.Properties, input.ID)
		p, err := tx.Properties.Delete(input.ID)
		res.Property = p
		res.Notification = tx.Notifications.Add(deletedPayload(title, user))
		return err
	})

	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "delete of unknown property",
			slog.String("property_id", input.ID),
			slog.String("notification_id", res.Notification.ID),
		)
		return res, err
	}
	if err != nil {
		return DeleteResult{}, err
	}

	s.log.InfoContext(ctx, "property deleted",
		slog.String("property_id", input.ID),
		slog.String("user_id", user),
	)
	return res, nil
}
