package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hackhub/internal/models"
)

const userColumns = `
	u.id, u.email, u.username, u.password_hash, u.first_name, u.last_name, u.visibility,
	u.xp, u.xp_needed, u.level, u.school_id, s.name AS school_name, u.grad_year,
	u.major_id, m.name AS major_name, u.discord, u.instagram, u.github, u.linkedin,
	u.personal, u.bio, u.blocked, u.profile_gradient, u.date_joined, u.updated_at
	FROM users u
	LEFT JOIN schools s ON s.id = u.school_id
	LEFT JOIN majors m ON m.id = u.major_id
`

// userLookupJoins maps a many-to-many lookup to its join table and column.
var userLookupJoins = map[models.LookupTable][2]string{
	models.Skills:    {"user_skills", "skill_id"},
	models.Interests: {"user_interests", "interest_id"},
}

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with joined school and major names, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` WHERE u.id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByEmail matches the email case-insensitively, or returns nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` WHERE lower(u.email) = lower($1)`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetSkills returns the user's skills ordered by name.
func (r *UserReadRepository) GetSkills(ctx context.Context, userID uuid.UUID) ([]models.LookupDB, error) {
	return r.getLookups(ctx, models.Skills, userID)
}

// GetInterests returns the user's interests ordered by name.
func (r *UserReadRepository) GetInterests(ctx context.Context, userID uuid.UUID) ([]models.LookupDB, error) {
	return r.getLookups(ctx, models.Interests, userID)
}

func (r *UserReadRepository) getLookups(ctx context.Context, table models.LookupTable, userID uuid.UUID) ([]models.LookupDB, error) {
	join, ok := userLookupJoins[table]
	if !ok {
		return nil, fmt.Errorf("unsupported lookup table %q", table)
	}
	query := fmt.Sprintf(`
		SELECT l.id, l.name
		FROM %s l
		JOIN %s j ON j.%s = l.id
		WHERE j.user_id = $1
		ORDER BY l.name
	`, table, join[0], join[1])

	items := []models.LookupDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, query, userID)
	logQuery(query, []any{userID}, len(items), err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new account. A taken email yields ErrUniqueViolation.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (id, email, username, password_hash, visibility, xp, xp_needed, level,
		                   blocked, profile_gradient, date_joined, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING date_joined, updated_at
	`
	args := []any{
		user.UserID, user.Email, user.Username, user.PasswordHash, user.Visibility,
		user.XP, user.XPNeeded, user.Level, user.Blocked, user.ProfileGradient,
	}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&user.DateJoined, &user.UpdatedAt)
	logQuery(query, args[:3], user.UserID, err)

	return mapPgError(err)
}

// UpdateDefaults persists backfilled gradient and xp_needed values.
func (r *UserWriteRepository) UpdateDefaults(ctx context.Context, userID uuid.UUID, gradient models.StringList, xpNeeded int) error {
	query := `
		UPDATE users
		SET profile_gradient = $2, xp_needed = $3
		WHERE id = $1
	`
	args := []any{userID, gradient, xpNeeded}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// Update writes every editable column of the account.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	query := `
		UPDATE users SET
			email = :email, username = :username, password_hash = :password_hash,
			first_name = :first_name, last_name = :last_name, visibility = :visibility,
			xp = :xp, xp_needed = :xp_needed, level = :level,
			school_id = :school_id, grad_year = :grad_year, major_id = :major_id,
			discord = :discord, instagram = :instagram, github = :github,
			linkedin = :linkedin, personal = :personal, bio = :bio,
			blocked = :blocked, profile_gradient = :profile_gradient,
			updated_at = NOW()
		WHERE id = :id
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, user)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{user.UserID}, rowsAffected, err)

	return mapPgError(err)
}

// SetSkills replaces the user's skills.
func (r *UserWriteRepository) SetSkills(ctx context.Context, userID uuid.UUID, ids []int64) error {
	return r.setLookups(ctx, models.Skills, userID, ids)
}

// SetInterests replaces the user's interests.
func (r *UserWriteRepository) SetInterests(ctx context.Context, userID uuid.UUID, ids []int64) error {
	return r.setLookups(ctx, models.Interests, userID, ids)
}

func (r *UserWriteRepository) setLookups(ctx context.Context, table models.LookupTable, userID uuid.UUID, ids []int64) error {
	join, ok := userLookupJoins[table]
	if !ok {
		return fmt.Errorf("unsupported lookup table %q", table)
	}
	exec := executor(ctx, r.db, r.txGetter)

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, join[0])
	_, err := exec.ExecContext(ctx, deleteQuery, userID)
	logQuery(deleteQuery, []any{userID}, nil, err)
	if err != nil || len(ids) == 0 {
		return err
	}

	insertQuery, args, err := sqlx.In(fmt.Sprintf(`
		INSERT INTO %s (user_id, %s)
		SELECT ?, l.id FROM %s l WHERE l.id IN (?)
		ON CONFLICT DO NOTHING
	`, join[0], join[1], table), userID, ids)
	if err != nil {
		return err
	}
	insertQuery = exec.Rebind(insertQuery)

	_, err = exec.ExecContext(ctx, insertQuery, args...)
	logQuery(insertQuery, args, nil, err)

	return err
}
