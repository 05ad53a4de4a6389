package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendDB is a friendship row joined with the user on the other side of it.
type FriendDB struct {
	FriendID        uuid.UUID  `db:"friend_id"`        // The other user
	FriendsSince    time.Time  `db:"friends_since"`    // Friendship creation time
	Email           string     `db:"email"`            // Other user's email
	Username        string     `db:"username"`         // Other user's username
	FirstName       string     `db:"first_name"`       // Other user's first name
	Level           int        `db:"level"`            // Other user's level
	XP              int        `db:"xp"`               // Other user's xp
	XPNeeded        int        `db:"xp_needed"`        // Other user's xp_needed
	ProfileGradient StringList `db:"profile_gradient"` // Other user's gradient
}
