// Package notification holds the bounded, newest-first notification log.
package notification

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// DefaultCapacity is the number of notifications retained before the
// oldest ones are evicted.
const DefaultCapacity = 50

// Option configures a Log.
type Option func(*Log)

// WithCapacity overrides DefaultCapacity. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.capacity = n
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithIDFunc overrides the id generator.
func WithIDFunc(fn func(prefix string, now time.Time) string) Option {
	return func(l *Log) { l.newID = fn }
}

// Log is a bounded deque of notifications ordered by insertion, newest
// first. It is not safe for concurrent use. Like the property collection,
// mutations swap in a new backing array so earlier snapshots stay intact.
type Log struct {
	items    []domain.Notification
	unread   int
	rev      uint64
	capacity int

	now   func() time.Time
	newID func(prefix string, now time.Time) string
}

// New creates an empty log.
func New(opts ...Option) *Log {
	l := &Log{
		capacity: DefaultCapacity,
		now:      time.Now,
		newID:    NewID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewID returns "<prefix>_<unix ms>_<random>".
func NewID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return prefix + "_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix
}

// idPrefix names ids after the action that produced them.
func idPrefix(action *domain.ActionType) string {
	if action == nil {
		return "notification"
	}
	switch *action {
	case domain.ActionPropertyCreated, domain.ActionPropertyUpdated, domain.ActionPropertyDeleted:
		return action.String()
	default:
		return "notification"
	}
}

// Add stamps the payload with an id and timestamp, prepends it unread and
// evicts whatever falls past the capacity.
func (l *Log) Add(p domain.NotificationPayload) domain.Notification {
	now := l.now().UTC()

	n := domain.Notification{
		ID:         l.uniqueID(idPrefix(p.ActionType), now),
		Title:      p.Title,
		Message:    p.Message,
		Type:       p.Type,
		Timestamp:  now,
		UserID:     clone(p.UserID),
		PropertyID: clone(p.PropertyID),
		ActionType: clone(p.ActionType),
	}

	size := min(len(l.items)+1, l.capacity)
	items := make([]domain.Notification, 0, size)
	items = append(items, n)
	items = append(items, l.items[:size-1]...)
	l.replace(items)

	return n
}

// MarkRead marks one notification read. It reports whether anything changed.
func (l *Log) MarkRead(id string) bool {
	return l.MarkManyRead([]string{id}) > 0
}

// MarkManyRead marks every listed notification read and returns how many
// were unread before. Unknown ids are skipped.
func (l *Log) MarkManyRead(ids []string) int {
	if len(ids) == 0 {
		return 0
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var items []domain.Notification
	changed := 0
	for i := range l.items {
		if l.items[i].Read {
			continue
		}
		if _, ok := want[l.items[i].ID]; !ok {
			continue
		}
		if items == nil {
			items = slices.Clone(l.items)
		}
		items[i].Read = true
		changed++
	}
	if changed > 0 {
		l.replace(items)
	}
	return changed
}

// Delete removes a notification. It reports whether the id was present.
func (l *Log) Delete(id string) bool {
	idx := slices.IndexFunc(l.items, func(n domain.Notification) bool { return n.ID == id })
	if idx < 0 {
		return false
	}
	items := make([]domain.Notification, 0, len(l.items)-1)
	items = append(items, l.items[:idx]...)
	items = append(items, l.items[idx+1:]...)
	l.replace(items)
	return true
}

// ClearAll empties the log.
func (l *Log) ClearAll() {
	l.replace(nil)
}

// Load replaces the log with items, keeping at most capacity entries from
// the front.
func (l *Log) Load(items []domain.Notification) {
	items = items[:min(len(items), l.capacity)]
	out := make([]domain.Notification, len(items))
	for i := range items {
		out[i] = cloneNotification(items[i])
	}
	l.replace(out)
}

// List returns the current snapshot, newest first. The slice is shared and
// must not be modified.
func (l *Log) List() []domain.Notification { return l.items }

// Len returns the number of retained notifications.
func (l *Log) Len() int { return len(l.items) }

// UnreadCount returns the number of notifications with Read == false.
func (l *Log) UnreadCount() int { return l.unread }

// Capacity returns the eviction threshold.
func (l *Log) Capacity() int { return l.capacity }

// Rev changes every time the log changes.
func (l *Log) Rev() uint64 { return l.rev }

func (l *Log) replace(items []domain.Notification) {
	l.items = items
	l.unread = 0
	for i := range items {
		if !items[i].Read {
			l.unread++
		}
	}
	l.rev++
}

func (l *Log) uniqueID(prefix string, now time.Time) string {
	for {
		id := l.newID(prefix, now)
		if !slices.ContainsFunc(l.items, func(n domain.Notification) bool { return n.ID == id }) {
			return id
		}
	}
}

func cloneNotification(n domain.Notification) domain.Notification {
	n.UserID = clone(n.UserID)
	n.PropertyID = clone(n.PropertyID)
	n.ActionType = clone(n.ActionType)
	return n
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
