// Package notify exposes per-user notification operations on top of the
// store's global log.
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

type notificationStore interface {
	AddNotification(ctx context.Context, p domain.NotificationPayload) domain.Notification
	MarkNotificationsRead(ctx context.Context, ids []string) int
	DeleteNotification(ctx context.Context, id string) bool
	ClearNotifications(ctx context.Context)
	Notifications() []domain.Notification
}

// Service provides notification operations scoped to a user.
type Service struct {
	store notificationStore
	log   *slog.Logger
}

// NewService creates a new notify service.
func NewService(log *slog.Logger, st notificationStore) *Service {
	return &Service{
		store: st,
		log:   log.With("service", "notify"),
	}
}
