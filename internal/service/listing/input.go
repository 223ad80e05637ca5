package listing

import "github.com/heartmarshall/hearthhub/internal/domain"

// CreateInput holds the parameters for creating a listing.
type CreateInput struct {
	Data     domain.PropertyFormData
	OwnerID  string
	Profile  *domain.UserProfile
	Featured bool
}

// UpdateInput holds the parameters for patching a listing.
type UpdateInput struct {
	ID     string
	Patch  domain.PropertyPatch
	UserID string
}

// DeleteInput holds the parameters for deleting a listing.
type DeleteInput struct {
	ID     string
	UserID string
}
