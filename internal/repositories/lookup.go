package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/hackhub/internal/models"
)

var lookupTables = map[models.LookupTable]bool{
	models.Skills:    true,
	models.Interests: true,
	models.Schools:   true,
	models.Majors:    true,
}

// LookupRepository reads the skill, interest, school and major reference tables.
type LookupRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLookupRepository(db *sqlx.DB, txGetter TxGetter) *LookupRepository {
	return &LookupRepository{db: db, txGetter: txGetter}
}

// MissingIDs returns the ids absent from table, in input order and without duplicates.
func (r *LookupRepository) MissingIDs(ctx context.Context, table models.LookupTable, ids []int64) ([]int64, error) {
	if !lookupTables[table] {
		return nil, fmt.Errorf("unsupported lookup table %q", table)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	exec := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(fmt.Sprintf(`SELECT id FROM %s WHERE id IN (?)`, table), ids)
	if err != nil {
		return nil, err
	}
	query = exec.Rebind(query)

	var found []int64
	err = sqlx.SelectContext(ctx, exec, &found, query, args...)
	logQuery(query, args, found, err)
	if err != nil {
		return nil, err
	}

	existing := make(map[int64]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}

	var missing []int64
	for _, id := range ids {
		if !existing[id] {
			missing = append(missing, id)
			existing[id] = true
		}
	}
	return missing, nil
}
