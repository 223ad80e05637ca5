package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// ErrCorruptState is returned by Rehydrate when the persisted payload
// cannot be decoded.
var ErrCorruptState = errors.New("corrupt persisted state")

// timeLayout matches the millisecond ISO-8601 form the browser wrote.
const timeLayout = "2006-01-02T15:04:05.000Z"

// envelope is the whole persisted state tree. The unread count is written
// for compatibility and recomputed on load.
type envelope struct {
	Properties    []propertyDTO     `json:"properties"`
	Notifications []notificationDTO `json:"notifications"`
	UnreadCount   int               `json:"unreadCount"`
}

type propertyDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Area         int      `json:"area"`
	PropertyType string   `json:"property_type"`
	Status       string   `json:"status"`
	Location     string   `json:"location"`
	Address      string   `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Images       []string `json:"images"`
	MapImage     *string  `json:"map_image,omitempty"`
	Amenities    []string `json:"amenities"`
	OwnerID      string   `json:"owner_id"`
	Views        int      `json:"views"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	ContactName  *string  `json:"contact_name,omitempty"`
	ContactEmail *string  `json:"contact_email,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
}

type notificationDTO struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Type       string  `json:"type"`
	Timestamp  string  `json:"timestamp"`
	Read       bool    `json:"read"`
	UserID     *string `json:"userId,omitempty"`
	PropertyID *string `json:"propertyId,omitempty"`
	ActionType *string `json:"actionType,omitempty"`
}

// State is the decoded form of a persisted payload.
type State struct {
	Properties    []domain.Property
	Notifications []domain.Notification
}

// Encode serializes the full state tree.
func Encode(props []domain.Property, notes []domain.Notification, unread int) ([]byte, error) {
	env := envelope{
		Properties:    make([]propertyDTO, len(props)),
		Notifications: make([]notificationDTO, len(notes)),
		UnreadCount:   unread,
	}
	for i := range props {
		env.Properties[i] = toPropertyDTO(&props[i])
	}
	for i := range notes {
		env.Notifications[i] = toNotificationDTO(&notes[i])
	}

	b, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return b, nil
}

// Decode parses a payload written by Encode.
func Decode(payload []byte) (State, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrCorruptState, err)
	}

	st := State{
		Properties:    make([]domain.Property, 0, len(env.Properties)),
		Notifications: make([]domain.Notification, 0, len(env.Notifications)),
	}
	for i := range env.Properties {
		p, err := env.Properties[i].toDomain()
		if err != nil {
			return State{}, fmt.Errorf("%w: property %d: %w", ErrCorruptState, i, err)
		}
		st.Properties = append(st.Properties, p)
	}
	for i := range env.Notifications {
		n, err := env.Notifications[i].toDomain()
		if err != nil {
			return State{}, fmt.Errorf("%w: notification %d: %w", ErrCorruptState, i, err)
		}
		st.Notifications = append(st.Notifications, n)
	}
	return st, nil
}

func toPropertyDTO(p *domain.Property) propertyDTO {
	return propertyDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        finite(&p.Price),
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		Area:         p.Area,
		PropertyType: string(p.PropertyType),
		Status:       string(p.Status),
		Location:     p.Location,
		Address:      p.Address,
		Latitude:     finite(p.Latitude),
		Longitude:    finite(p.Longitude),
		Images:       nonNil(p.Images),
		MapImage:     p.MapImage,
		Amenities:    nonNil(p.Amenities),
		OwnerID:      p.OwnerID,
		Views:        p.Views,
		Featured:     p.Featured,
		CreatedAt:    formatTime(p.CreatedAt),
		UpdatedAt:    formatTime(p.UpdatedAt),
		ContactName:  p.ContactName,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
	}
}

func (d *propertyDTO) toDomain() (domain.Property, error) {
	createdAt, err := parseTime(d.CreatedAt)
	if err != nil {
		return domain.Property{}, fmt.Errorf("created_at: %w", err)
	}
	updatedAt, err := parseTime(d.UpdatedAt)
	if err != nil {
		return domain.Property{}, fmt.Errorf("updated_at: %w", err)
	}
	var price float64
	if d.Price != nil {
		price = *d.Price
	}
	return domain.Property{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Price:        price,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		Area:         d.Area,
		PropertyType: domain.PropertyType(d.PropertyType),
		Status:       domain.PropertyStatus(d.Status),
		Location:     d.Location,
		Address:      d.Address,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Images:       nonNil(d.Images),
		MapImage:     d.MapImage,
		Amenities:    nonNil(d.Amenities),
		OwnerID:      d.OwnerID,
		Views:        d.Views,
		Featured:     d.Featured,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		ContactName:  d.ContactName,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
	}, nil
}

func toNotificationDTO(n *domain.Notification) notificationDTO {
	d := notificationDTO{
		ID:         n.ID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       string(n.Type),
		Timestamp:  formatTime(n.Timestamp),
		Read:       n.Read,
		UserID:     n.UserID,
		PropertyID: n.PropertyID,
	}
	if n.ActionType != nil {
		a := string(*n.ActionType)
		d.ActionType = &a
	}
	return d
}

func (d *notificationDTO) toDomain() (domain.Notification, error) {
	ts, err := parseTime(d.Timestamp)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("timestamp: %w", err)
	}
	n := domain.Notification{
		ID:         d.ID,
		Title:      d.Title,
		Message:    d.Message,
		Type:       domain.NotificationType(d.Type),
		Timestamp:  ts,
		Read:       d.Read,
		UserID:     d.UserID,
		PropertyID: d.PropertyID,
	}
	if d.ActionType != nil {
		a := domain.ActionType(*d.ActionType)
		n.ActionType = &a
	}
	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime accepts any RFC 3339 form, so hand-edited or older payloads load.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// finite drops NaN and infinities, which JSON cannot carry; they are
// written as null.
func finite(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	c := *v
	return &c
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
