package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hackhub/internal/models"
)

const hackathonColumns = `
	h.id, h.name, h.description, h.start_date, h.end_date, h.created_at,
	(SELECT COUNT(DISTINCT tm.user_id)
	   FROM hackathon_teams pht
	   JOIN team_memberships tm ON tm.team_id = pht.team_id
	  WHERE pht.hackathon_id = h.id) AS participants
`

// entryFrom joins entries with their hackathon and team; callers add the membership filter.
const entryFrom = `
	SELECT ` + hackathonColumns + `,
	       t.id AS team_id, t.name AS team_name, t.created_at AS team_created_at, ht.placement
	FROM hackathon_teams ht
	JOIN hackathons h ON h.id = ht.hackathon_id
	JOIN teams t ON t.id = ht.team_id
`

// userEntryFrom restricts entries to teams that user $1 belongs to.
const userEntryFrom = entryFrom + `
	JOIN team_memberships m ON m.team_id = ht.team_id AND m.user_id = $1
`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type HackathonRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHackathonRepository(db *sqlx.DB, txGetter TxGetter) *HackathonRepository {
	return &HackathonRepository{db: db, txGetter: txGetter}
}

// ListUpcomingForUser returns entries not yet ended, earliest start first.
func (r *HackathonRepository) ListUpcomingForUser(ctx context.Context, userID uuid.UUID, now time.Time, page models.Page) ([]models.HackathonEntryDB, error) {
	query := userEntryFrom + `
		WHERE h.end_date >= $2
		ORDER BY h.start_date, h.id
		LIMIT $3 OFFSET $4
	`
	return r.listEntries(ctx, query, userID, now, page.Limit, page.Offset)
}

// ListEndingSoonForUser returns entries not yet ended, soonest end first.
func (r *HackathonRepository) ListEndingSoonForUser(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]models.HackathonEntryDB, error) {
	query := userEntryFrom + `
		WHERE h.end_date >= $2
		ORDER BY h.end_date, h.id
		LIMIT $3
	`
	return r.listEntries(ctx, query, userID, now, limit)
}

// ListPastForUser returns ended entries, most recent first. placedOnly drops unplaced entries.
func (r *HackathonRepository) ListPastForUser(ctx context.Context, userID uuid.UUID, now time.Time, placedOnly bool, page models.Page) ([]models.HackathonEntryDB, error) {
	query := userEntryFrom + `
		WHERE h.end_date < $2 AND ($3 = FALSE OR ht.placement IS NOT NULL)
		ORDER BY h.end_date DESC, h.id
		LIMIT $4 OFFSET $5
	`
	return r.listEntries(ctx, query, userID, now, placedOnly, page.Limit, page.Offset)
}

// ListPastForTeam returns the team's placed entries in ended hackathons, most recent first.
func (r *HackathonRepository) ListPastForTeam(ctx context.Context, teamID uuid.UUID, now time.Time, page models.Page) ([]models.HackathonEntryDB, error) {
	query := entryFrom + `
		WHERE ht.team_id = $1 AND h.end_date < $2 AND ht.placement IS NOT NULL
		ORDER BY h.end_date DESC, h.id
		LIMIT $3 OFFSET $4
	`
	return r.listEntries(ctx, query, teamID, now, page.Limit, page.Offset)
}

// BestPlacementForUser returns the user's lowest placement, ties broken by most recent end.
func (r *HackathonRepository) BestPlacementForUser(ctx context.Context, userID uuid.UUID) (*models.HackathonEntryDB, error) {
	query := userEntryFrom + `
		WHERE ht.placement IS NOT NULL
		ORDER BY ht.placement, h.end_date DESC
		LIMIT 1
	`
	return r.getEntry(ctx, query, userID)
}

// BestPlacementForTeam returns the team's lowest placement, ties broken by most recent end.
func (r *HackathonRepository) BestPlacementForTeam(ctx context.Context, teamID uuid.UUID) (*models.HackathonEntryDB, error) {
	query := entryFrom + `
		WHERE ht.team_id = $1 AND ht.placement IS NOT NULL
		ORDER BY ht.placement, h.end_date DESC
		LIMIT 1
	`
	return r.getEntry(ctx, query, teamID)
}

// EntryForUser returns the user's team entry in the hackathon, or nil.
func (r *HackathonRepository) EntryForUser(ctx context.Context, userID, hackathonID uuid.UUID) (*models.HackathonEntryDB, error) {
	query := userEntryFrom + `
		WHERE ht.hackathon_id = $2
		ORDER BY ht.created_at, ht.id
		LIMIT 1
	`
	return r.getEntry(ctx, query, userID, hackathonID)
}

// Search matches names case-insensitively, most participants first.
func (r *HackathonRepository) Search(ctx context.Context, term string, page models.Page) ([]models.HackathonDB, error) {
	query := `
		SELECT ` + hackathonColumns + `
		FROM hackathons h
		WHERE h.name ILIKE $1
		ORDER BY participants DESC, h.start_date, h.id
		LIMIT $2 OFFSET $3
	`
	args := []any{"%" + likeEscaper.Replace(term) + "%", page.Limit, page.Offset}

	hackathons := []models.HackathonDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &hackathons, query, args...)
	logQuery(query, args, len(hackathons), err)
	if err != nil {
		return nil, err
	}
	return hackathons, nil
}

// GetByID returns the hackathon, or nil when absent.
func (r *HackathonRepository) GetByID(ctx context.Context, hackathonID uuid.UUID) (*models.HackathonDB, error) {
	query := `SELECT ` + hackathonColumns + ` FROM hackathons h WHERE h.id = $1`

	var hackathon models.HackathonDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &hackathon, query, hackathonID)
	logQuery(query, []any{hackathonID}, hackathon.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// Leaderboard returns placed teams in ascending placement order.
func (r *HackathonRepository) Leaderboard(ctx context.Context, hackathonID uuid.UUID, page models.Page) ([]models.LeaderboardEntryDB, error) {
	const query = `
		SELECT ht.placement, t.id AS team_id, t.name AS team_name, t.created_at AS team_created_at
		FROM hackathon_teams ht
		JOIN teams t ON t.id = ht.team_id
		WHERE ht.hackathon_id = $1 AND ht.placement IS NOT NULL
		ORDER BY ht.placement, ht.created_at, ht.id
		LIMIT $2 OFFSET $3
	`
	args := []any{hackathonID, page.Limit, page.Offset}

	entries := []models.LeaderboardEntryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, args...)
	logQuery(query, args, len(entries), err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HackathonRepository) listEntries(ctx context.Context, query string, args ...any) ([]models.HackathonEntryDB, error) {
	entries := []models.HackathonEntryDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &entries, query, args...)
	logQuery(query, args, len(entries), err)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *HackathonRepository) getEntry(ctx context.Context, query string, args ...any) (*models.HackathonEntryDB, error) {
	var entry models.HackathonEntryDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &entry, query, args...)
	logQuery(query, args, entry.HackathonID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
