package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
)

// ProfileHistorySize is how many past hackathons a profile lookup embeds.
const ProfileHistorySize = 5

// LookupService serves user and team profiles and their placement history.
type LookupService struct {
	users       UserReader
	friendships FriendshipReader
	hackathons  HackathonReader
	teams       TeamReader
	defaults    Backfiller
}

// NewLookupService creates a new LookupService.
func NewLookupService(
	users UserReader,
	friendships FriendshipReader,
	hackathons HackathonReader,
	teams TeamReader,
	defaults Backfiller,
) *LookupService {
	return &LookupService{
		users:       users,
		friendships: friendships,
		hackathons:  hackathons,
		teams:       teams,
		defaults:    defaults,
	}
}

// User returns targetID's profile as seen by viewerID.
func (s *LookupService) User(ctx context.Context, viewerID, targetID uuid.UUID) (*payloads.UserProfile, error) {
	_, viewer, err := loadViewer(ctx, s.users, s.friendships, viewerID)
	if err != nil {
		return nil, err
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", targetID, "error", err)
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}
	if err := s.defaults.EnsureUser(ctx, target); err != nil {
		return nil, err
	}

	skills, err := s.users.GetSkills(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get skills", "userID", targetID, "error", err)
		return nil, err
	}
	interests, err := s.users.GetInterests(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get interests", "userID", targetID, "error", err)
		return nil, err
	}

	best, err := s.hackathons.BestPlacementForUser(ctx, targetID)
	if err != nil {
		logger.Log.Errorw("failed to get best placement", "userID", targetID, "error", err)
		return nil, err
	}
	past, err := s.hackathons.ListPastForUser(ctx, targetID, time.Now(), true, models.NewPage(0, ProfileHistorySize))
	if err != nil {
		logger.Log.Errorw("failed to get past hackathons", "userID", targetID, "error", err)
		return nil, err
	}

	return &payloads.UserProfile{
		UserCore:       payloads.NewUserCore(target, skills, interests, viewer),
		BestPlacement:  bestResult(best),
		PastHackathons: payloads.NewHackathonResults(past),
	}, nil
}

// UserHistory pages through the placed, ended hackathons of a user.
func (s *LookupService) UserHistory(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.HackathonResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	past, err := s.hackathons.ListPastForUser(ctx, userID, time.Now(), true, page)
	if err != nil {
		logger.Log.Errorw("failed to get past hackathons", "userID", userID, "error", err)
		return nil, err
	}
	return payloads.NewHackathonResults(past), nil
}

// Team returns the team profile as seen by viewerID.
func (s *LookupService) Team(ctx context.Context, viewerID, teamID uuid.UUID) (*payloads.TeamProfile, error) {
	_, viewer, err := loadViewer(ctx, s.users, s.friendships, viewerID)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		logger.Log.Errorw("failed to get team", "teamID", teamID, "error", err)
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	members, err := s.teams.ListMembers(ctx, teamID)
	if err != nil {
		logger.Log.Errorw("failed to get team members", "teamID", teamID, "error", err)
		return nil, err
	}

	best, err := s.hackathons.BestPlacementForTeam(ctx, teamID)
	if err != nil {
		logger.Log.Errorw("failed to get best placement", "teamID", teamID, "error", err)
		return nil, err
	}
	past, err := s.hackathons.ListPastForTeam(ctx, teamID, time.Now(), models.NewPage(0, ProfileHistorySize))
	if err != nil {
		logger.Log.Errorw("failed to get past hackathons", "teamID", teamID, "error", err)
		return nil, err
	}

	profile := payloads.NewTeamProfile(
		*team,
		payloads.NewMembers(members, viewer, uuid.Nil),
		bestResult(best),
		payloads.NewHackathonResults(past),
	)
	return &profile, nil
}

// TeamHistory pages through the placed, ended hackathons of a team.
func (s *LookupService) TeamHistory(ctx context.Context, teamID uuid.UUID, page models.Page) ([]payloads.HackathonResult, error) {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		logger.Log.Errorw("failed to get team", "teamID", teamID, "error", err)
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	past, err := s.hackathons.ListPastForTeam(ctx, teamID, time.Now(), page)
	if err != nil {
		logger.Log.Errorw("failed to get past hackathons", "teamID", teamID, "error", err)
		return nil, err
	}
	return payloads.NewHackathonResults(past), nil
}

func bestResult(e *models.HackathonEntryDB) *payloads.HackathonResult {
	if e == nil {
		return nil
	}
	r := payloads.NewHackathonResult(*e)
	return &r
}
