package selector

import (
	"sync"

	"github.com/heartmarshall/hearthhub/internal/domain"
)

// Notifications derives per-user notification views from a store.
type Notifications struct {
	src source

	mu      sync.Mutex
	rev     uint64
	primed  bool
	visible map[string]visibleView
}

type visibleView struct {
	items  []domain.Notification
	unread int
}

// NewNotifications creates notification views over src.
func NewNotifications(src source) *Notifications {
	return &Notifications{src: src}
}

// VisibleTo returns global notifications plus those addressed to userID,
// newest first.
func (s *Notifications) VisibleTo(userID string) []domain.Notification {
	return s.view(userID).items
}

// UnreadCountFor counts unread notifications visible to userID.
func (s *Notifications) UnreadCountFor(userID string) int {
	return s.view(userID).unread
}

func (s *Notifications) view(userID string) visibleView {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.src.Snapshot()
	if !s.primed || snap.NotificationsRev != s.rev {
		s.primed = true
		s.rev = snap.NotificationsRev
		s.visible = make(map[string]visibleView)
	}
	if v, ok := s.visible[userID]; ok {
		return v
	}

	v := visibleView{items: domain.FilterVisible(snap.Notifications, userID)}
	for i := range v.items {
		if !v.items[i].Read {
			v.unread++
		}
	}
	s.visible[userID] = v
	return v
}
