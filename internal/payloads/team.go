package payloads

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/models"
)

// Member is a compact user card used in rosters.
type Member struct {
	UUID            string   `json:"uuid"`
	FriendsSince    *int64   `json:"friends_since"`
	ProfileGradient []string `json:"profile_gradient"`
	DisplayName     string   `json:"display_name"`
	Username        string   `json:"username"`
	Level           int      `json:"level"`
	IsBlocked       bool     `json:"is_blocked"`
}

// Team is a team with its roster.
type Team struct {
	UUID      string   `json:"uuid"`
	Name      string   `json:"name"`
	CreatedAt int64    `json:"created_at"`
	Members   []Member `json:"members"`
}

// TeamProfile is the team lookup payload.
type TeamProfile struct {
	UUID           string            `json:"uuid"`
	Name           string            `json:"name"`
	CreatedAt      int64             `json:"created_at"`
	BestPlacement  *HackathonResult  `json:"best_placement"`
	PastHackathons []HackathonResult `json:"past_hackathons"`
	Members        []Member          `json:"members"`
}

func shortName(firstName, username string) string {
	if firstName != "" {
		return firstName
	}
	return username
}

// NewMembers serializes a roster, leaving out exclude (pass uuid.Nil to keep everyone).
func NewMembers(members []models.MemberDB, v *Viewer, exclude uuid.UUID) []Member {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if exclude != uuid.Nil && m.UserID == exclude {
			continue
		}
		out = append(out, Member{
			UUID:            m.UserID.String(),
			FriendsSince:    v.FriendsSince(m.UserID),
			ProfileGradient: gradient(m.ProfileGradient),
			DisplayName:     shortName(m.FirstName, m.Username),
			Username:        m.Username,
			Level:           m.Level,
			IsBlocked:       v.IsBlocked(m.UserID),
		})
	}
	return out
}

// NewTeam serializes a team with an already serialized roster.
func NewTeam(t models.TeamDB, members []Member) Team {
	if members == nil {
		members = []Member{}
	}
	return Team{
		UUID:      t.TeamID.String(),
		Name:      t.Name,
		CreatedAt: t.CreatedAt.Unix(),
		Members:   members,
	}
}

// NewTeamProfile assembles the team lookup payload.
func NewTeamProfile(t models.TeamDB, members []Member, best *HackathonResult, past []HackathonResult) TeamProfile {
	team := NewTeam(t, members)
	if past == nil {
		past = []HackathonResult{}
	}
	return TeamProfile{
		UUID:           team.UUID,
		Name:           team.Name,
		CreatedAt:      team.CreatedAt,
		BestPlacement:  best,
		PastHackathons: past,
		Members:        team.Members,
	}
}
