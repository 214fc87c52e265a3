package compound

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/chemcalc/schemas"
)

//go:generate mockgen -source=repository.go -destination=../mocks/compound/mock_store.go -package=mock_compound

// DefaultRecentLimit is the size of the recent queries list.
const DefaultRecentLimit = 3

// Store defines operations on the local lookup cache.
type Store interface {
	Upsert(ctx context.Context, record Record) error
	Recent(ctx context.Context, limit int) ([]RecentEntry, error)
}

// DBRepository implements Store on the single sqlite table chemicals.
// en_name and cas are part of the table but never written or read.
type DBRepository struct {
	db *sqlx.DB
}

var _ Store = (*DBRepository)(nil)

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// EnsureSchema creates the chemicals table. A table that lacks the cas column is from an older
// layout and is dropped and recreated empty, losing every cached row.
func (r *DBRepository) EnsureSchema(ctx context.Context) error {
	var tables int
	if err := r.db.GetContext(ctx, &tables, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'chemicals'"); err != nil {
		return fmt.Errorf("db.GetContext(sqlite_master) > %w", err)
	}

	if tables > 0 {
		rows, probeErr := r.db.QueryContext(ctx, "SELECT cas FROM chemicals LIMIT 1")
		if probeErr == nil {
			_ = rows.Close()
		} else {
			var lost int
			if err := r.db.GetContext(ctx, &lost, "SELECT COUNT(*) FROM chemicals"); err != nil {
				lost = -1
			}
			slog.Default().Warn("chemicals table has an outdated schema, rebuilding it; cached rows are discarded",
				"discardedRows", lost,
				"probeError", probeErr)
			if _, err := r.db.ExecContext(ctx, "DROP TABLE IF EXISTS chemicals"); err != nil {
				return fmt.Errorf("db.ExecContext(drop chemicals) > %w", err)
			}
		}
	}

	if _, err := r.db.ExecContext(ctx, schemas.ChemicalsTable); err != nil {
		return fmt.Errorf("db.ExecContext(create chemicals) > %w", err)
	}
	return nil
}

// Upsert inserts the record or fully replaces the row with the same query name.
// A replaced row gets a new rowid, so it becomes the most recent one.
func (r *DBRepository) Upsert(ctx context.Context, record Record) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO chemicals (query_name, mw, formula, iupac_name) VALUES (?, ?, ?, ?)",
		record.QueryName, record.MolecularWeight, record.Formula, record.IUPACName)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert chemical) > %w", err)
	}
	return nil
}

// Recent returns up to limit rows in reverse write order.
func (r *DBRepository) Recent(ctx context.Context, limit int) ([]RecentEntry, error) {
	entries := []RecentEntry{}
	if limit <= 0 {
		return entries, nil
	}
	if err := r.db.SelectContext(ctx, &entries,
		"SELECT query_name, COALESCE(formula, '') AS formula FROM chemicals ORDER BY rowid DESC LIMIT ?", limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(recent chemicals) > %w", err)
	}
	return entries, nil
}
