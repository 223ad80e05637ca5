package domain

import (
	"slices"
	"time"
)

// Property is a single real-estate listing.
type Property struct {
	ID           string
	Title        string
	Description  string
	Price        float64
	Bedrooms     int
	Bathrooms    int
	Area         int
	PropertyType PropertyType
	Status       PropertyStatus
	Location     string
	Address      string
	Latitude     *float64
	Longitude    *float64
	Images       []string
	MapImage     *string
	Amenities    []string
	OwnerID      string
	Views        int
	Featured     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Contact fields are a snapshot of the creator's profile at creation time.
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
}

// IsApproved reports whether the listing is publicly visible.
func (p *Property) IsApproved() bool {
	return p.Status == PropertyStatusApproved
}

// Clone returns a deep copy that shares no slices or pointers with p.
func (p Property) Clone() Property {
	c := p
	c.Images = slices.Clone(p.Images)
	c.Amenities = slices.Clone(p.Amenities)
	c.Latitude = clonePtr(p.Latitude)
	c.Longitude = clonePtr(p.Longitude)
	c.MapImage = clonePtr(p.MapImage)
	c.ContactName = clonePtr(p.ContactName)
	c.ContactEmail = clonePtr(p.ContactEmail)
	c.ContactPhone = clonePtr(p.ContactPhone)
	return c
}

// PropertyFormData is the typed payload submitted by the add/edit listing form.
type PropertyFormData struct {
	Title        string
	Description  string
	Price        float64
	Bedrooms     int
	Bathrooms    int
	Area         int
	PropertyType PropertyType
	Location     string
	Amenities    []string
	Images       []string
}

// NewProperty is the input to the property store's create operation.
// Empty OwnerID is replaced by the store's default owner.
type NewProperty struct {
	PropertyFormData

	OwnerID      string
	Featured     bool
	MapImage     *string
	ContactName  *string
	ContactEmail *string
	ContactPhone *string
}

// PropertyPatch is a partial update. Nil fields are left untouched.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Price        *float64
	Bedrooms     *int
	Bathrooms    *int
	Area         *int
	PropertyType *PropertyType
	Location     *string
	Address      *string
	Latitude     *float64
	Longitude    *float64
	Images       []string
	MapImage     *string
	Amenities    []string
	Status       *PropertyStatus
	Featured     *bool
}

// IsEmpty reports whether the patch touches no field.
func (p PropertyPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.Bedrooms == nil && p.Bathrooms == nil && p.Area == nil &&
		p.PropertyType == nil && p.Location == nil && p.Address == nil &&
		p.Latitude == nil && p.Longitude == nil && p.Images == nil &&
		p.MapImage == nil && p.Amenities == nil && p.Status == nil && p.Featured == nil
}

// Apply merges the patch into dst. Slices are copied so dst never aliases
// the caller's patch.
func (p PropertyPatch) Apply(dst *Property) {
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Bedrooms != nil {
		dst.Bedrooms = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		dst.Bathrooms = *p.Bathrooms
	}
	if p.Area != nil {
		dst.Area = *p.Area
	}
	if p.PropertyType != nil {
		dst.PropertyType = *p.PropertyType
	}
	if p.Location != nil {
		dst.Location = *p.Location
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.Latitude != nil {
		dst.Latitude = clonePtr(p.Latitude)
	}
	if p.Longitude != nil {
		dst.Longitude = clonePtr(p.Longitude)
	}
	if p.Images != nil {
		dst.Images = slices.Clone(p.Images)
	}
	if p.MapImage != nil {
		dst.MapImage = clonePtr(p.MapImage)
	}
	if p.Amenities != nil {
		dst.Amenities = slices.Clone(p.Amenities)
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
}

// UserProfile is the subset of an identity provider's profile that is
// copied onto listings at creation time.
type UserProfile struct {
	FullName string
	Email    string
	Phone    string
}

// OperationResult is the advisory outcome of the most recent property
// mutation, meant to be surfaced as a toast.
type OperationResult struct {
	Kind    ResultKind
	Message string
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
