package payloads

import "github.com/sbilibin2017/hackhub/internal/models"

// Hackathon is a hackathon card with the viewer's team and placement when entered.
type Hackathon struct {
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	StartDate    int64  `json:"start_date"`
	EndDate      int64  `json:"end_date"`
	Participants int    `json:"participants"`
	Team         *Team  `json:"team"`
	Placement    *int   `json:"placement"`
}

// SearchResult is a hackathon card carrying its top leaderboard (null when no placements).
type SearchResult struct {
	Hackathon
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// LeaderboardEntry is one placed team.
type LeaderboardEntry struct {
	Placement int      `json:"placement"`
	UUID      string   `json:"uuid"`
	Name      string   `json:"name"`
	CreatedAt int64    `json:"created_at"`
	Members   []Member `json:"members"`
}

// HackathonResult is a hackathon together with a team's placement in it.
type HackathonResult struct {
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	StartDate    int64  `json:"start_date"`
	EndDate      int64  `json:"end_date"`
	Participants int    `json:"participants"`
	Placement    *int   `json:"placement"`
}

// NewHackathon serializes h; team and placement may be nil.
func NewHackathon(h models.HackathonDB, team *Team, placement *int) Hackathon {
	return Hackathon{
		UUID:         h.HackathonID.String(),
		Name:         h.Name,
		Description:  h.Description,
		StartDate:    h.StartDate.Unix(),
		EndDate:      h.EndDate.Unix(),
		Participants: h.Participants,
		Team:         team,
		Placement:    placement,
	}
}

// NewSearchResult attaches a leaderboard; an empty leaderboard is reported as null.
func NewSearchResult(h Hackathon, leaderboard []LeaderboardEntry) SearchResult {
	if len(leaderboard) == 0 {
		leaderboard = nil
	}
	return SearchResult{Hackathon: h, Leaderboard: leaderboard}
}

// NewLeaderboardEntry serializes a placed team.
func NewLeaderboardEntry(e models.LeaderboardEntryDB, members []Member) LeaderboardEntry {
	team := NewTeam(e.Team(), members)
	return LeaderboardEntry{
		Placement: e.Placement,
		UUID:      team.UUID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
		Members:   team.Members,
	}
}

// NewHackathonResult serializes an entry as a history item.
func NewHackathonResult(e models.HackathonEntryDB) HackathonResult {
	return HackathonResult{
		UUID:         e.HackathonID.String(),
		Name:         e.Name,
		Description:  e.Description,
		StartDate:    e.StartDate.Unix(),
		EndDate:      e.EndDate.Unix(),
		Participants: e.Participants,
		Placement:    e.Placement,
	}
}

// NewHackathonResults serializes a history page.
func NewHackathonResults(entries []models.HackathonEntryDB) []HackathonResult {
	out := make([]HackathonResult, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewHackathonResult(e))
	}
	return out
}
