package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/models"
)

//go:generate mockgen -source=stores.go -destination=stores_mock_test.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetSkills(ctx context.Context, userID uuid.UUID) ([]models.LookupDB, error)
	GetInterests(ctx context.Context, userID uuid.UUID) ([]models.LookupDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
	SetSkills(ctx context.Context, userID uuid.UUID, ids []int64) error
	SetInterests(ctx context.Context, userID uuid.UUID, ids []int64) error
}

// FriendshipReader lists friendships from one user's side.
type FriendshipReader interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.FriendDB, error)
	List(ctx context.Context, userID uuid.UUID, page models.Page) ([]models.FriendDB, error)
	SinceMap(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error)
}

// HackathonReader reads hackathons, entries and leaderboards.
type HackathonReader interface {
	ListUpcomingForUser(ctx context.Context, userID uuid.UUID, now time.Time, page models.Page) ([]models.HackathonEntryDB, error)
	ListEndingSoonForUser(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]models.HackathonEntryDB, error)
	ListPastForUser(ctx context.Context, userID uuid.UUID, now time.Time, placedOnly bool, page models.Page) ([]models.HackathonEntryDB, error)
	ListPastForTeam(ctx context.Context, teamID uuid.UUID, now time.Time, page models.Page) ([]models.HackathonEntryDB, error)
	BestPlacementForUser(ctx context.Context, userID uuid.UUID) (*models.HackathonEntryDB, error)
	BestPlacementForTeam(ctx context.Context, teamID uuid.UUID) (*models.HackathonEntryDB, error)
	EntryForUser(ctx context.Context, userID, hackathonID uuid.UUID) (*models.HackathonEntryDB, error)
	Search(ctx context.Context, term string, page models.Page) ([]models.HackathonDB, error)
	GetByID(ctx context.Context, hackathonID uuid.UUID) (*models.HackathonDB, error)
	Leaderboard(ctx context.Context, hackathonID uuid.UUID, page models.Page) ([]models.LeaderboardEntryDB, error)
}

// TeamReader reads teams and their rosters.
type TeamReader interface {
	GetByID(ctx context.Context, teamID uuid.UUID) (*models.TeamDB, error)
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]models.MemberDB, error)
	ListMembersOf(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]models.MemberDB, error)
}

// LookupChecker reports which ids are missing from a lookup table.
type LookupChecker interface {
	MissingIDs(ctx context.Context, table models.LookupTable, ids []int64) ([]int64, error)
}
