package store

import (
	"context"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// CreateProperty adds a listing. See property.Collection.Create.
func (s *Store) CreateProperty(ctx context.Context, in domain.NewProperty) domain.Property {
	var p domain.Property
	_ = s.Update(ctx, func(tx *Tx) error {
		p = tx.Properties.Create(in)
		return nil
	})
	return p
}

// UpdateProperty patches a listing. A missing id yields domain.ErrNotFound.
func (s *Store) UpdateProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error) {
	var p domain.Property
	err := s.Update(ctx, func(tx *Tx) error {
		var err error
		p, err = tx.Properties.Update(id, patch)
		return err
	})
	return p, err
}

// DeleteProperty removes a listing. A missing id yields domain.ErrNotFound.
func (s *Store) DeleteProperty(ctx context.Context, id string) (domain.Property, error) {
	var p domain.Property
	err := s.Update(ctx, func(tx *Tx) error {
		var err error
		p, err = tx.Properties.Delete(id)
		return err
	})
	return p, err
}

// IncrementViews bumps the view counter, reporting whether the id exists.
func (s *Store) IncrementViews(ctx context.Context, id string) bool {
	var ok bool
	_ = s.Update(ctx, func(tx *Tx) error {
		ok = tx.Properties.IncrementViews(id)
		return nil
	})
	return ok
}

// LoadProperties replaces every listing.
func (s *Store) LoadProperties(ctx context.Context, items []domain.Property) {
	_ = s.Update(ctx, func(tx *Tx) error {
		tx.Properties.Load(items)
		return nil
	})
}

// ClearProperties removes every listing and resets the last result.
func (s *Store) ClearProperties(ctx context.Context) {
	_ = s.Update(ctx, func(tx *Tx) error {
		tx.Properties.Clear()
		return nil
	})
}

// GetProperty returns a copy of one listing.
func (s *Store) GetProperty(id string) (domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.Get(id)
}

// ListProperties returns all listings, most recently created first.
// The slice is shared and must not be modified.
func (s *Store) ListProperties() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.List()
}

// LastResult returns the advisory outcome of the latest listing mutation.
func (s *Store) LastResult() domain.OperationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props.LastResult()
}

// ClearResult dismisses the advisory outcome.
func (s *Store) ClearResult() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props.ClearResult()
}

// AddNotification appends a notification to the log.
func (s *Store) AddNotification(ctx context.Context, p domain.NotificationPayload) domain.Notification {
	var n domain.Notification
	_ = s.Update(ctx, func(tx *Tx) error {
		n = tx.Notifications.Add(p)
		return nil
	})
	return n
}

// MarkNotificationRead marks one notification read.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) bool {
	var ok bool
	_ = s.Update(ctx, func(tx *Tx) error {
		ok = tx.Notifications.MarkRead(id)
		return nil
	})
	return ok
}

// MarkNotificationsRead marks the listed notifications read and returns how
// many changed. There is deliberately no unscoped variant.
func (s *Store) MarkNotificationsRead(ctx context.Context, ids []string) int {
	var n int
	_ = s.Update(ctx, func(tx *Tx) error {
		n = tx.Notifications.MarkManyRead(ids)
		return nil
	})
	return n
}

// DeleteNotification removes one notification.
func (s *Store) DeleteNotification(ctx context.Context, id string) bool {
	var ok bool
	_ = s.Update(ctx, func(tx *Tx) error {
		ok = tx.Notifications.Delete(id)
		return nil
	})
	return ok
}

// ClearNotifications empties the log.
func (s *Store) ClearNotifications(ctx context.Context) {
	_ = s.Update(ctx, func(tx *Tx) error {
		tx.Notifications.ClearAll()
		return nil
	})
}

// Notifications returns the log, newest first. The slice is shared and must
// not be modified.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.List()
}

// UnreadCount returns the number of unread notifications across all users.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes.UnreadCount()
}
