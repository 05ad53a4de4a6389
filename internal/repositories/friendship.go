package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hackhub/internal/models"
)

// friendColumns selects the user on the other side of each friendship of $1.
const friendColumns = `
	SELECT o.id AS friend_id, f.created_at AS friends_since, o.email, o.username, o.first_name,
	       o.level, o.xp, o.xp_needed, o.profile_gradient
	FROM friendships f
	JOIN users o ON o.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
	WHERE f.user_id = $1 OR f.friend_id = $1
`

type FriendshipRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFriendshipRepository(db *sqlx.DB, txGetter TxGetter) *FriendshipRepository {
	return &FriendshipRepository{db: db, txGetter: txGetter}
}

// ListRecent returns the newest friendships first.
func (r *FriendshipRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.FriendDB, error) {
	query := friendColumns + ` ORDER BY f.created_at DESC, f.id DESC LIMIT $2`
	return r.list(ctx, query, userID, limit)
}

// List returns friendships oldest first within the page.
func (r *FriendshipRepository) List(ctx context.Context, userID uuid.UUID, page models.Page) ([]models.FriendDB, error) {
	query := friendColumns + ` ORDER BY f.created_at, f.id LIMIT $2 OFFSET $3`
	return r.list(ctx, query, userID, page.Limit, page.Offset)
}

func (r *FriendshipRepository) list(ctx context.Context, query string, args ...any) ([]models.FriendDB, error) {
	friends := []models.FriendDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &friends, query, args...)
	logQuery(query, args, len(friends), err)
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// SinceMap returns, per friend, the earliest link between userID and that friend.
func (r *FriendshipRepository) SinceMap(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error) {
	const query = `
		SELECT CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END AS friend_id,
		       MIN(f.created_at) AS friends_since
		FROM friendships f
		WHERE f.user_id = $1 OR f.friend_id = $1
		GROUP BY 1
	`

	var rows []struct {
		FriendID     uuid.UUID `db:"friend_id"`
		FriendsSince time.Time `db:"friends_since"`
	}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, userID)
	logQuery(query, []any{userID}, len(rows), err)
	if err != nil {
		return nil, err
	}

	since := make(map[uuid.UUID]time.Time, len(rows))
	for _, row := range rows {
		since[row.FriendID] = row.FriendsSince
	}
	return since, nil
}
