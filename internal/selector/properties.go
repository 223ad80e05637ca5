package selector

import (
	"sync"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

var noProperties = []domain.Property{}

// Properties derives listing views from a store.
type Properties struct {
	src         source
	recentLimit int

	mu       sync.Mutex
	rev      uint64
	primed   bool
	approved []domain.Property
	featured []domain.Property
	recent   []domain.Property
	byOwner  map[string][]domain.Property
	filtered map[domain.CriteriaKey][]domain.Property
}

// NewProperties creates listing views over src. A non-positive recentLimit
// selects DefaultRecentLimit.
func NewProperties(src source, recentLimit int) *Properties {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Properties{src: src, recentLimit: recentLimit}
}

// All returns every listing in collection order.
func (s *Properties) All() []domain.Property {
	return s.src.Snapshot().Properties
}

// Approved returns listings with status approved.
func (s *Properties) Approved() []domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	return s.approved
}

// Featured returns approved listings marked featured.
func (s *Properties) Featured() []domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	if s.featured == nil {
		s.featured = where(s.approved, func(p *domain.Property) bool { return p.Featured })
	}
	return s.featured
}

// Recent returns the first approved listings, newest first.
func (s *Properties) Recent() []domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	if s.recent == nil {
		n := min(len(s.approved), s.recentLimit)
		s.recent = s.approved[:n:n]
	}
	return s.recent
}

// Count returns the number of approved listings.
func (s *Properties) Count() int {
	return len(s.Approved())
}

// ByOwner returns every listing owned by ownerID regardless of status.
// An empty ownerID means no signed-in user and yields an empty result.
func (s *Properties) ByOwner(ownerID string) []domain.Property {
	if ownerID == "" {
		return noProperties
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.syncLocked()
	if got, ok := s.byOwner[ownerID]; ok {
		return got
	}
	got := where(snap, func(p *domain.Property) bool { return p.OwnerID == ownerID })
	s.byOwner[ownerID] = got
	return got
}

// ByID returns a copy of the listing with the given id.
func (s *Properties) ByID(id string) (domain.Property, bool) {
	items := s.src.Snapshot().Properties
	for i := range items {
		if items[i].ID == id {
			return items[i].Clone(), true
		}
	}
	return domain.Property{}, false
}

// Filtered returns approved listings matching every active criterion.
func (s *Properties) Filtered(c domain.PropertyCriteria) []domain.Property {
	key := c.Key()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.syncLocked()
	if got, ok := s.filtered[key]; ok {
		return got
	}
	if len(s.filtered) >= maxFilterEntries {
		clear(s.filtered)
	}
	got := where(s.approved, c.Matches)
	s.filtered[key] = got
	return got
}

// syncLocked drops every cached view when the collection has moved on and
// returns the current listings.
func (s *Properties) syncLocked() []domain.Property {
	snap := s.src.Snapshot()
	if s.primed && snap.PropertiesRev == s.rev {
		return snap.Properties
	}
	s.primed = true
	s.rev = snap.PropertiesRev
	s.approved = where(snap.Properties, (*domain.Property).IsApproved)
	s.featured = nil
	s.recent = nil
	s.byOwner = make(map[string][]domain.Property)
	s.filtered = make(map[domain.CriteriaKey][]domain.Property)
	return snap.Properties
}

func where(items []domain.Property, keep func(*domain.Property) bool) []domain.Property {
	out := []domain.Property{}
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
