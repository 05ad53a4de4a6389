package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hackhub/internal/models"
)

type TeamRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTeamRepository(db *sqlx.DB, txGetter TxGetter) *TeamRepository {
	return &TeamRepository{db: db, txGetter: txGetter}
}

// GetByID returns the team, or nil when absent.
func (r *TeamRepository) GetByID(ctx context.Context, teamID uuid.UUID) (*models.TeamDB, error) {
	const query = `SELECT id, name, created_at FROM teams WHERE id = $1`

	var team models.TeamDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &team, query, teamID)
	logQuery(query, []any{teamID}, team, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListMembers returns the roster in join order.
func (r *TeamRepository) ListMembers(ctx context.Context, teamID uuid.UUID) ([]models.MemberDB, error) {
	const query = `
		SELECT u.id, u.username, u.first_name, u.level, u.profile_gradient
		FROM team_memberships tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at, u.id
	`

	members := []models.MemberDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &members, query, teamID)
	logQuery(query, []any{teamID}, len(members), err)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListMembersOf returns the rosters of several teams keyed by team id.
func (r *TeamRepository) ListMembersOf(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]models.MemberDB, error) {
	rosters := make(map[uuid.UUID][]models.MemberDB, len(teamIDs))
	if len(teamIDs) == 0 {
		return rosters, nil
	}

	exec := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`
		SELECT tm.team_id, u.id, u.username, u.first_name, u.level, u.profile_gradient
		FROM team_memberships tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id IN (?)
		ORDER BY tm.joined_at, u.id
	`, teamIDs)
	if err != nil {
		return nil, err
	}
	query = exec.Rebind(query)

	var rows []struct {
		TeamID uuid.UUID `db:"team_id"`
		models.MemberDB
	}
	err = sqlx.SelectContext(ctx, exec, &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		rosters[row.TeamID] = append(rosters[row.TeamID], row.MemberDB)
	}
	return rosters, nil
}
