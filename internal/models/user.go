package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Visibility values
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID          uuid.UUID  `json:"id" db:"id"`                             // Primary key
	Email           string     `json:"email" db:"email"`                       // Unique login email
	Username        string     `json:"username" db:"username"`                 // Public handle
	PasswordHash    string     `json:"-" db:"password_hash"`                   // bcrypt hash
	FirstName       string     `json:"first_name" db:"first_name"`             // Optional first name
	LastName        string     `json:"last_name" db:"last_name"`               // Optional last name
	Visibility      string     `json:"visibility" db:"visibility"`             // public or private
	XP              int        `json:"xp" db:"xp"`                             // Experience points
	XPNeeded        int        `json:"xp_needed" db:"xp_needed"`               // XP left until next level
	Level           int        `json:"level" db:"level"`                       // Current level
	SchoolID        *int64     `json:"school" db:"school_id"`                  // School reference
	SchoolName      *string    `json:"school_name" db:"school_name"`           // Joined school name
	GradYear        *int       `json:"grad_year" db:"grad_year"`               // 4-digit graduation year
	MajorID         *int64     `json:"major" db:"major_id"`                    // Major reference
	MajorName       *string    `json:"major_name" db:"major_name"`             // Joined major name
	Discord         *string    `json:"discord" db:"discord"`                   // Social link
	Instagram       *string    `json:"instagram" db:"instagram"`               // Social link
	Github          *string    `json:"github" db:"github"`                     // Social link
	Linkedin        *string    `json:"linkedin" db:"linkedin"`                 // Social link
	Personal        *string    `json:"personal" db:"personal"`                 // Personal site
	Bio             *string    `json:"bio" db:"bio"`                           // Free-form bio
	Blocked         StringList `json:"blocked" db:"blocked"`                   // UUIDs of blocked users
	ProfileGradient StringList `json:"profile_gradient" db:"profile_gradient"` // Two hex colors
	DateJoined      time.Time  `json:"date_joined" db:"date_joined"`           // Creation timestamp
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`             // Last update timestamp
}

// IsPublic reports whether the profile is visible to everyone.
func (u *UserDB) IsPublic() bool {
	return u.Visibility == VisibilityPublic
}

// StringList is a list of strings stored as a JSONB array.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = out
	return nil
}
