package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamDB represents a team row
type TeamDB struct {
	TeamID    uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MemberDB is the subset of user columns shown in team rosters.
type MemberDB struct {
	UserID          uuid.UUID  `db:"id"`
	Username        string     `db:"username"`
	FirstName       string     `db:"first_name"`
	Level           int        `db:"level"`
	ProfileGradient StringList `db:"profile_gradient"`
}
