package models

import (
	"time"

	"github.com/google/uuid"
)

// HackathonDB represents a hackathon row with its derived participant count.
type HackathonDB struct {
	HackathonID  uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	StartDate    time.Time `json:"start_date" db:"start_date"`
	EndDate      time.Time `json:"end_date" db:"end_date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Participants int       `json:"participants" db:"participants"` // distinct users across entered teams
}

// HackathonEntryDB is a hackathon joined with one of its entered teams.
type HackathonEntryDB struct {
	HackathonDB
	TeamID        uuid.UUID `db:"team_id"`
	TeamName      string    `db:"team_name"`
	TeamCreatedAt time.Time `db:"team_created_at"`
	Placement     *int      `db:"placement"`
}

// Team returns the entered team.
func (e *HackathonEntryDB) Team() TeamDB {
	return TeamDB{TeamID: e.TeamID, Name: e.TeamName, CreatedAt: e.TeamCreatedAt}
}

// LeaderboardEntryDB is a placed team within a hackathon.
type LeaderboardEntryDB struct {
	Placement     int       `db:"placement"`
	TeamID        uuid.UUID `db:"team_id"`
	TeamName      string    `db:"team_name"`
	TeamCreatedAt time.Time `db:"team_created_at"`
}

// Team returns the placed team.
func (e *LeaderboardEntryDB) Team() TeamDB {
	return TeamDB{TeamID: e.TeamID, Name: e.TeamName, CreatedAt: e.TeamCreatedAt}
}
