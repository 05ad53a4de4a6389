package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
)

// Lookup errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrHackathonNotFound = errors.New("hackathon not found")
)

// ErrViewerNotFound is returned when the authenticated user no longer exists.
var ErrViewerNotFound = errors.New("authenticated user not found")

// loadViewer returns the user together with their perspective on other users.
func loadViewer(ctx context.Context, users UserReader, friendships FriendshipReader, userID uuid.UUID) (*models.UserDB, *payloads.Viewer, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrViewerNotFound
	}

	since, err := friendships.SinceMap(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get friendships", "userID", userID, "error", err)
		return nil, nil, err
	}

	return user, payloads.NewViewer(user, since), nil
}

// rostersFor loads the members of every team in ids with a single query.
func rostersFor(ctx context.Context, teams TeamReader, ids []uuid.UUID) (map[uuid.UUID][]models.MemberDB, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	rosters, err := teams.ListMembersOf(ctx, unique)
	if err != nil {
		logger.Log.Errorw("failed to get team rosters", "teams", unique, "error", err)
		return nil, err
	}
	return rosters, nil
}

// entryCards serializes the viewer's entries with their team, leaving the viewer out of each roster.
func entryCards(ctx context.Context, teams TeamReader, entries []models.HackathonEntryDB, v *payloads.Viewer) ([]payloads.Hackathon, error) {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.TeamID)
	}
	rosters, err := rostersFor(ctx, teams, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]payloads.Hackathon, 0, len(entries))
	for _, e := range entries {
		team := payloads.NewTeam(e.Team(), payloads.NewMembers(rosters[e.TeamID], v, v.UserID))
		cards = append(cards, payloads.NewHackathon(e.HackathonDB, &team, e.Placement))
	}
	return cards, nil
}
