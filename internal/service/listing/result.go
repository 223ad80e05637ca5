package listing

import "github.com/heartmarshall/hearthhub/internal/domain"

// CreateResult is the created listing and the notification announcing it.
type CreateResult struct {
	Property     domain.Property
	Notification domain.Notification
}

// UpdateResult carries the notification even when the listing was not
// found; Property is zero in that case.
type UpdateResult struct {
	Property     domain.Property
	Notification domain.Notification
}

// DeleteResult is the removed listing and the notification announcing it.
type DeleteResult struct {
	Property     domain.Property
	Notification domain.Notification
}
