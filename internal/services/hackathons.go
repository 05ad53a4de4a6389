package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
)

// SearchLeaderboardSize is how many placed teams each search result carries.
const SearchLeaderboardSize = 10

// HackathonService serves hackathon listings, search and leaderboards.
type HackathonService struct {
	users       UserReader
	friendships FriendshipReader
	hackathons  HackathonReader
	teams       TeamReader
}

// NewHackathonService creates a new HackathonService.
func NewHackathonService(users UserReader, friendships FriendshipReader, hackathons HackathonReader, teams TeamReader) *HackathonService {
	return &HackathonService{
		users:       users,
		friendships: friendships,
		hackathons:  hackathons,
		teams:       teams,
	}
}

// Upcoming lists hackathons the user is entered in that have not ended, earliest start first.
func (s *HackathonService) Upcoming(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.Hackathon, error) {
	_, viewer, err := loadViewer(ctx, s.users, s.friendships, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.hackathons.ListUpcomingForUser(ctx, userID, time.Now(), page)
	if err != nil {
		logger.Log.Errorw("failed to list upcoming hackathons", "userID", userID, "error", err)
		return nil, err
	}
	return entryCards(ctx, s.teams, entries, viewer)
}

// Past lists hackathons the user took part in that have ended, most recent first.
func (s *HackathonService) Past(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.Hackathon, error) {
	_, viewer, err := loadViewer(ctx, s.users, s.friendships, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.hackathons.ListPastForUser(ctx, userID, time.Now(), false, page)
	if err != nil {
		logger.Log.Errorw("failed to list past hackathons", "userID", userID, "error", err)
		return nil, err
	}
	return entryCards(ctx, s.teams, entries, viewer)
}

// Search finds hackathons by name and attaches the viewer's entry and the top of each leaderboard.
func (s *HackathonService) Search(ctx context.Context, userID uuid.UUID, query string, page models.Page) ([]payloads.SearchResult, error) {
	_, viewer, err := loadViewer(ctx, s.users, s.friendships, userID)
	if err != nil {
		return nil, err
	}

	found, err := s.hackathons.Search(ctx, query, page)
	if err != nil {
		logger.Log.Errorw("failed to search hackathons", "query", query, "error", err)
		return nil, err
	}

	entries := make([]*models.HackathonEntryDB, len(found))
	boards := make([][]models.LeaderboardEntryDB, len(found))
	var teamIDs []uuid.UUID
	for i, h := range found {
		entry, err := s.hackathons.EntryForUser(ctx, userID, h.HackathonID)
		if err != nil {
			logger.Log.Errorw("failed to get hackathon entry", "hackathonID", h.HackathonID, "error", err)
			return nil, err
		}
		board, err := s.hackathons.Leaderboard(ctx, h.HackathonID, models.NewPage(0, SearchLeaderboardSize))
		if err != nil {
			logger.Log.Errorw("failed to get leaderboard", "hackathonID", h.HackathonID, "error", err)
			return nil, err
		}

		entries[i], boards[i] = entry, board
		if entry != nil {
			teamIDs = append(teamIDs, entry.TeamID)
		}
		for _, b := range board {
			teamIDs = append(teamIDs, b.TeamID)
		}
	}

	rosters, err := rostersFor(ctx, s.teams, teamIDs)
	if err != nil {
		return nil, err
	}

	results := make([]payloads.SearchResult, 0, len(found))
	for i, h := range found {
		var team *payloads.Team
		var placement *int
		if e := entries[i]; e != nil {
			t := payloads.NewTeam(e.Team(), payloads.NewMembers(rosters[e.TeamID], viewer, userID))
			team, placement = &t, e.Placement
		}
		results = append(results, payloads.NewSearchResult(
			payloads.NewHackathon(h, team, placement),
			leaderboard(boards[i], rosters, viewer),
		))
	}
	return results, nil
}

// Leaderboard lists the placed teams of a hackathon in placement order.
func (s *HackathonService) Leaderboard(ctx context.Context, userID, hackathonID uuid.UUID, page models.Page) ([]payloads.LeaderboardEntry, error) {
	hackathon, err := s.hackathons.GetByID(ctx, hackathonID)
	if err != nil {
		logger.Log.Errorw("failed to get hackathon", "hackathonID", hackathonID, "error", err)
		return nil, err
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}

	_, viewer, err := loadViewer(ctx, s.users, s.friendships, userID)
	if err != nil {
		return nil, err
	}

	board, err := s.hackathons.Leaderboard(ctx, hackathonID, page)
	if err != nil {
		logger.Log.Errorw("failed to get leaderboard", "hackathonID", hackathonID, "error", err)
		return nil, err
	}

	teamIDs := make([]uuid.UUID, 0, len(board))
	for _, b := range board {
		teamIDs = append(teamIDs, b.TeamID)
	}
	rosters, err := rostersFor(ctx, s.teams, teamIDs)
	if err != nil {
		return nil, err
	}

	entries := leaderboard(board, rosters, viewer)
	if entries == nil {
		entries = []payloads.LeaderboardEntry{}
	}
	return entries, nil
}

func leaderboard(board []models.LeaderboardEntryDB, rosters map[uuid.UUID][]models.MemberDB, v *payloads.Viewer) []payloads.LeaderboardEntry {
	if len(board) == 0 {
		return nil
	}
	out := make([]payloads.LeaderboardEntry, 0, len(board))
	for _, b := range board {
		out = append(out, payloads.NewLeaderboardEntry(b, payloads.NewMembers(rosters[b.TeamID], v, uuid.Nil)))
	}
	return out
}
