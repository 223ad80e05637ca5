package notify

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// ListFor returns the notifications visible to userID, newest first.
func (s *Service) ListFor(userID string) []domain.Notification {
	return domain.FilterVisible(s.store.Notifications(), userID)
}

// UnreadCountFor counts unread notifications visible to userID.
func (s *Service) UnreadCountFor(userID string) int {
	n := 0
	for _, item := range s.ListFor(userID) {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead marks one notification read. Notifications the user cannot see
// are reported as not found.
func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	if !s.visible(userID, id) {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	s.store.MarkNotificationsRead(ctx, []string{id})
	return nil
}

// MarkAllReadFor marks every notification visible to userID read and
// returns how many changed. Other users' notifications are untouched.
func (s *Service) MarkAllReadFor(ctx context.Context, userID string) int {
	var ids []string
	for _, n := range s.ListFor(userID) {
		if !n.Read {
			ids = append(ids, n.ID)
		}
	}
	if len(ids) == 0 {
		return 0
	}

	changed := s.store.MarkNotificationsRead(ctx, ids)
	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID),
		slog.Int("count", changed),
	)
	return changed
}

// Delete removes one notification visible to userID.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if !s.visible(userID, id) || !s.store.DeleteNotification(ctx, id) {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ClearAll empties the whole log for every user.
func (s *Service) ClearAll(ctx context.Context) {
	s.store.ClearNotifications(ctx)
	s.log.InfoContext(ctx, "notifications cleared")
}

func (s *Service) visible(userID, id string) bool {
	return slices.ContainsFunc(s.store.Notifications(), func(n domain.Notification) bool {
		return n.ID == id && n.VisibleTo(userID)
	})
}
