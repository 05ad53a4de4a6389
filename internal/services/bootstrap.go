package services

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/payloads"
)

// Bootstrap window sizes
const (
	BootstrapHackathons = 5
	BootstrapFriends    = 5
)

// BootstrapService assembles the payload a client receives right after authenticating.
type BootstrapService struct {
	users       UserReader
	friendships FriendshipReader
	hackathons  HackathonReader
	teams       TeamReader
	defaults    Backfiller
}

// NewBootstrapService creates a new BootstrapService.
func NewBootstrapService(
	users UserReader,
	friendships FriendshipReader,
	hackathons HackathonReader,
	teams TeamReader,
	defaults Backfiller,
) *BootstrapService {
	return &BootstrapService{
		users:       users,
		friendships: friendships,
		hackathons:  hackathons,
		teams:       teams,
		defaults:    defaults,
	}
}

// Build returns the user's own profile, their soonest-ending upcoming hackathons
// and their most recent friends (oldest first).
func (s *BootstrapService) Build(ctx context.Context, userID uuid.UUID) (*payloads.Bootstrap, error) {
	user, viewer, err := loadViewer(ctx, s.users, s.friendships, userID)
	if err != nil {
		return nil, err
	}
	if err := s.defaults.EnsureUser(ctx, user); err != nil {
		return nil, err
	}

	skills, err := s.users.GetSkills(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get skills", "userID", userID, "error", err)
		return nil, err
	}
	interests, err := s.users.GetInterests(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get interests", "userID", userID, "error", err)
		return nil, err
	}

	entries, err := s.hackathons.ListEndingSoonForUser(ctx, userID, time.Now(), BootstrapHackathons)
	if err != nil {
		logger.Log.Errorw("failed to get upcoming hackathons", "userID", userID, "error", err)
		return nil, err
	}
	hackathons, err := entryCards(ctx, s.teams, entries, viewer)
	if err != nil {
		return nil, err
	}

	friends, err := s.friendships.ListRecent(ctx, userID, BootstrapFriends)
	if err != nil {
		logger.Log.Errorw("failed to get friends", "userID", userID, "error", err)
		return nil, err
	}
	if err := s.defaults.EnsureFriends(ctx, friends); err != nil {
		return nil, err
	}
	slices.Reverse(friends)

	return &payloads.Bootstrap{
		User:       payloads.NewUserCore(user, skills, interests, nil),
		Hackathons: hackathons,
		Friends:    payloads.NewFriends(friends, viewer),
	}, nil
}
