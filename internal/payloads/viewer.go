package payloads

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/models"
)

// Viewer is the authenticated user whose perspective shapes derived fields
// such as friends_since and is_blocked. A nil *Viewer is anonymous.
type Viewer struct {
	UserID       uuid.UUID
	blocked      map[string]struct{}
	friendsSince map[uuid.UUID]time.Time
}

// NewViewer builds a viewer from the user row and the earliest friendship time per friend.
func NewViewer(u *models.UserDB, friendsSince map[uuid.UUID]time.Time) *Viewer {
	v := &Viewer{
		UserID:       u.UserID,
		blocked:      make(map[string]struct{}, len(u.Blocked)),
		friendsSince: friendsSince,
	}
	for _, id := range u.Blocked {
		v.blocked[id] = struct{}{}
	}
	return v
}

// FriendsSince returns the unix time the viewer and id became friends, or nil.
func (v *Viewer) FriendsSince(id uuid.UUID) *int64 {
	if v == nil {
		return nil
	}
	since, ok := v.friendsSince[id]
	if !ok {
		return nil
	}
	ts := since.Unix()
	return &ts
}

// IsBlocked reports whether the viewer has blocked id.
func (v *Viewer) IsBlocked(id uuid.UUID) bool {
	if v == nil {
		return false
	}
	_, ok := v.blocked[id.String()]
	return ok
}

// Is reports whether the viewer is id.
func (v *Viewer) Is(id uuid.UUID) bool {
	return v != nil && v.UserID == id
}
