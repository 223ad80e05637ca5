package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// Push adds a notification. A missing type defaults to info and a missing
// action defaults to system.
func (s *Service) Push(ctx context.Context, input PushInput) (domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return domain.Notification{}, err
	}

	typ := input.Type
	if typ == "" {
		typ = domain.NotificationTypeInfo
	}
	action := input.ActionType
	if action == nil {
		system := domain.ActionSystem
		action = &system
	}

	n := s.store.AddNotification(ctx, domain.NotificationPayload{
		Title:      strings.TrimSpace(input.Title),
		Message:    input.Message,
		Type:       typ,
		UserID:     input.UserID,
		PropertyID: input.PropertyID,
		ActionType: action,
	})

	s.log.InfoContext(ctx, "notification pushed",
		slog.String("notification_id", n.ID),
		slog.String("type", typ.String()),
	)
	return n, nil
}
