package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/payloads"
)

// FriendService lists a user's friends.
type FriendService struct {
	users       UserReader
	friendships FriendshipReader
	defaults    Backfiller
}

// NewFriendService creates a new FriendService.
func NewFriendService(users UserReader, friendships FriendshipReader, defaults Backfiller) *FriendService {
	return &FriendService{users: users, friendships: friendships, defaults: defaults}
}

// List returns one page of friends, oldest friendship first.
func (s *FriendService) List(ctx context.Context, userID uuid.UUID, page models.Page) ([]payloads.Friend, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrViewerNotFound
	}

	friends, err := s.friendships.List(ctx, userID, page)
	if err != nil {
		logger.Log.Errorw("failed to list friends", "userID", userID, "error", err)
		return nil, err
	}
	if err := s.defaults.EnsureFriends(ctx, friends); err != nil {
		return nil, err
	}

	return payloads.NewFriends(friends, payloads.NewViewer(user, nil)), nil
}
