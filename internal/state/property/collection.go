// Package property holds the canonical collection of property listings.
//
// Collection is not safe for concurrent use. The root store serializes all
// access to it. Mutations never modify a slice that was handed out by List:
// they build a fresh backing array, so snapshots stay valid and comparable
// by revision.
package property

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// DefaultOwnerID is assigned to listings created without an owner.
const DefaultOwnerID = "local-user"

const notFoundMessage = "Property not found!"

// Option configures a Collection.
type Option func(*Collection)

// WithClock overrides the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(c *Collection) { c.now = now }
}

// WithIDFunc overrides the id generator. The generator is called again
// while it returns an id that is already taken.
func WithIDFunc(fn func(now time.Time) string) Option {
	return func(c *Collection) { c.newID = fn }
}

// WithDefaultOwner sets the owner used when NewProperty.OwnerID is empty.
func WithDefaultOwner(ownerID string) Option {
	return func(c *Collection) {
		if ownerID != "" {
			c.defaultOwner = ownerID
		}
	}
}

// Collection is an ordered set of listings, most recently created first.
type Collection struct {
	items  []domain.Property
	rev    uint64
	result domain.OperationResult

	now          func() time.Time
	newID        func(now time.Time) string
	defaultOwner string
}

// New creates an empty collection.
func New(opts ...Option) *Collection {
	c := &Collection{
		now:          time.Now,
		newID:        NewID,
		defaultOwner: DefaultOwnerID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewID returns a base36 millisecond timestamp followed by a random suffix.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(now.UnixMilli(), 36) + suffix
}

// Create builds a new approved listing from in and prepends it.
func (c *Collection) Create(in domain.NewProperty) domain.Property {
	now := c.now().UTC()

	owner := in.OwnerID
	if owner == "" {
		owner = c.defaultOwner
	}

	p := domain.Property{
		ID:           c.uniqueID(now),
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		Area:         in.Area,
		PropertyType: in.PropertyType,
		Status:       domain.PropertyStatusApproved,
		Location:     in.Location,
		Address:      in.Location,
		Images:       cloneOrEmpty(in.Images),
		Amenities:    cloneOrEmpty(in.Amenities),
		OwnerID:      owner,
		Featured:     in.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p.MapImage = clone(in.MapImage)
	p.ContactName = clone(in.ContactName)
	p.ContactEmail = clone(in.ContactEmail)
	p.ContactPhone = clone(in.ContactPhone)

	items := make([]domain.Property, 0, len(c.items)+1)
	items = append(items, p)
	items = append(items, c.items...)
	c.replace(items)

	c.result = success(fmt.Sprintf("Property \"%s\" added successfully!", p.Title))
	return p.Clone()
}

// Update merges patch into the listing with the given id and refreshes
// updated_at. Fields the patch leaves nil are untouched.
func (c *Collection) Update(id string, patch domain.PropertyPatch) (domain.Property, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		c.result = failure(notFoundMessage)
		return domain.Property{}, fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}

	updated := c.items[idx].Clone()
	patch.Apply(&updated)
	updated.UpdatedAt = c.touch(updated.CreatedAt)

	items := slices.Clone(c.items)
	items[idx] = updated
	c.replace(items)

	c.result = success(fmt.Sprintf("Property \"%s\" updated successfully!", updated.Title))
	return updated.Clone(), nil
}

// Delete removes the listing and returns it. No tombstone is kept.
func (c *Collection) Delete(id string) (domain.Property, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		c.result = failure(notFoundMessage)
		return domain.Property{}, fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}

	removed := c.items[idx]
	items := make([]domain.Property, 0, len(c.items)-1)
	items = append(items, c.items[:idx]...)
	items = append(items, c.items[idx+1:]...)
	c.replace(items)

	c.result = success(fmt.Sprintf("Property \"%s\" deleted successfully!", removed.Title))
	return removed.Clone(), nil
}

// IncrementViews adds one view to the listing. It reports false and does
// nothing when the id is unknown. Neither updated_at nor the last result
// change.
func (c *Collection) IncrementViews(id string) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}

	items := slices.Clone(c.items)
	items[idx].Views++
	c.replace(items)
	return true
}

// Get returns a copy of the listing with the given id.
func (c *Collection) Get(id string) (domain.Property, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return domain.Property{}, fmt.Errorf("property %s: %w", id, domain.ErrNotFound)
	}
	return c.items[idx].Clone(), nil
}

// List returns the current snapshot in collection order. The slice is
// shared and must not be modified.
func (c *Collection) List() []domain.Property {
	return c.items
}

// Len returns the number of listings.
func (c *Collection) Len() int { return len(c.items) }

// Rev changes every time the collection changes.
func (c *Collection) Rev() uint64 { return c.rev }

// Load replaces the whole collection, keeping the given order.
func (c *Collection) Load(items []domain.Property) {
	out := make([]domain.Property, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	c.replace(out)
}

// Clear empties the collection and resets the last result.
func (c *Collection) Clear() {
	c.replace(nil)
	c.result = domain.OperationResult{}
}

// LastResult returns the outcome of the most recent create, update or delete.
func (c *Collection) LastResult() domain.OperationResult { return c.result }

// ClearResult resets the last result once it has been shown.
func (c *Collection) ClearResult() { c.result = domain.OperationResult{} }

func (c *Collection) replace(items []domain.Property) {
	c.items = items
	c.rev++
}

func (c *Collection) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(p domain.Property) bool { return p.ID == id })
}

func (c *Collection) uniqueID(now time.Time) string {
	for {
		id := c.newID(now)
		if c.indexOf(id) < 0 {
			return id
		}
	}
}

// touch returns the current time, never earlier than createdAt.
func (c *Collection) touch(createdAt time.Time) time.Time {
	now := c.now().UTC()
	if now.Before(createdAt) {
		return createdAt
	}
	return now
}

func success(msg string) domain.OperationResult {
	return domain.OperationResult{Kind: domain.ResultSuccess, Message: msg}
}

func failure(msg string) domain.OperationResult {
	return domain.OperationResult{Kind: domain.ResultError, Message: msg}
}

func cloneOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
