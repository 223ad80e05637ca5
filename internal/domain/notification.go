package domain

import (
	"slices"
	"time"
)

// Notification is a user-facing event record.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      NotificationType
	Timestamp time.Time
	Read      bool

	// UserID scopes visibility to one user; nil means visible to everyone.
	UserID     *string
	PropertyID *string
	ActionType *ActionType
}

// VisibleTo reports whether the notification should be shown to userID.
func (n *Notification) VisibleTo(userID string) bool {
	return n.UserID == nil || *n.UserID == userID
}

// NotificationPayload is the caller-supplied part of a notification.
// ID, Timestamp and Read are assigned by the notification log.
type NotificationPayload struct {
	Title      string
	Message    string
	Type       NotificationType
	UserID     *string
	PropertyID *string
	ActionType *ActionType
}

// FilterVisible returns the notifications visible to userID, preserving order.
func FilterVisible(items []Notification, userID string) []Notification {
	out := make([]Notification, 0, len(items))
	for i := range items {
		if items[i].VisibleTo(userID) {
			out = append(out, items[i])
		}
	}
	return slices.Clip(out)
}
