// Package adapters provides the repository implementation for the purge feature.
package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"maintenance_backend/internal/feature/purge/usecase"
)

const (
	// DefaultSourceTable is the daily price history table.
	DefaultSourceTable = "daily_prices"
	// DefaultBackupTable archives rows before deletion. It is append-only
	// and never truncated by this repository.
	DefaultBackupTable = "deleted_securities_backup"
)

// priceTableMySQL performs the backup-then-delete purge with raw SQL.
// Table names come from deployment configuration, never from request input,
// so interpolating them into statements is safe.
type priceTableMySQL struct {
	db          *gorm.DB
	sourceTable string
	backupTable string
}

var _ usecase.PriceTableRepository = (*priceTableMySQL)(nil)

// NewPriceTableRepository creates a new priceTableMySQL instance.
// Empty table names fall back to the defaults.
func NewPriceTableRepository(db *gorm.DB, sourceTable, backupTable string) *priceTableMySQL {
	if sourceTable == "" {
		sourceTable = DefaultSourceTable
	}
	if backupTable == "" {
		backupTable = DefaultBackupTable
	}
	return &priceTableMySQL{db: db, sourceTable: sourceTable, backupTable: backupTable}
}

// HasSourceTable reports whether the source price table exists.
func (r *priceTableMySQL) HasSourceTable(ctx context.Context) (bool, error) {
	return r.db.WithContext(ctx).Migrator().HasTable(r.sourceTable), nil
}

// BackupAndDelete copies the matching rows into the backup table and, when
// confirmed, deletes them from the source table. Both statements share one
// transaction so a row is never deleted without its backup copy committed.
func (r *priceTableMySQL) BackupAndDelete(ctx context.Context, symbols []string, confirmed bool) (int64, int64, error) {
	var backedUp, deleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.ensureBackupTable(tx); err != nil {
			return fmt.Errorf("ensure backup table: %w", err)
		}

		res := tx.Exec(
			fmt.Sprintf("INSERT INTO %s SELECT * FROM %s WHERE symbol IN ?", r.backupTable, r.sourceTable),
			symbols,
		)
		if res.Error != nil {
			return fmt.Errorf("backup rows: %w", res.Error)
		}
		backedUp = res.RowsAffected

		if !confirmed {
			return nil
		}

		res = tx.Exec(
			fmt.Sprintf("DELETE FROM %s WHERE symbol IN ?", r.sourceTable),
			symbols,
		)
		if res.Error != nil {
			return fmt.Errorf("delete rows: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return backedUp, deleted, nil
}

// ensureBackupTable creates the backup table as an empty schema clone of the
// source table. Creating it empty keeps first runs and re-runs on the same
// append path; the original populate-on-create form silently skips the copy
// for any later symbol set.
func (r *priceTableMySQL) ensureBackupTable(tx *gorm.DB) error {
	return tx.Exec(
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s AS SELECT * FROM %s WHERE 1=0", r.backupTable, r.sourceTable),
	).Error
}
