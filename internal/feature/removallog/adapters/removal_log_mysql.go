// Package adapters provides the gorm-backed removal log repository.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maintenance_backend/internal/feature/removallog/domain/entity"
	"maintenance_backend/internal/feature/removallog/usecase"
)

// RemovalLogModel is the gorm model for the removal_log table.
type RemovalLogModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Symbol    string    `gorm:"size:32;not null;uniqueIndex"`
	Date      time.Time `gorm:"not null"`
	Reason    string    `gorm:"size:255"`
	Status    string    `gorm:"size:32;not null"`
	LastPrice float64
	Watchlist string `gorm:"size:128"`
	CreatedAt time.Time
}

func (RemovalLogModel) TableName() string {
	return "removal_log"
}

// removalLogMySQL persists removal entries with gorm.
type removalLogMySQL struct {
	db *gorm.DB
}

var _ usecase.RemovalLogRepository = (*removalLogMySQL)(nil)

// NewRemovalLogRepository creates a new removalLogMySQL instance.
func NewRemovalLogRepository(db *gorm.DB) *removalLogMySQL {
	return &removalLogMySQL{db: db}
}

// Save inserts the entry unless the symbol is already logged. The unique
// index on symbol makes the dedup race-safe; the insert is silently skipped
// on conflict.
func (r *removalLogMySQL) Save(ctx context.Context, e entity.RemovalEntry) (bool, error) {
	m := RemovalLogModel{
		ID:        e.ID,
		Symbol:    e.Symbol,
		Date:      e.Date,
		Reason:    e.Reason,
		Status:    e.Status,
		LastPrice: e.LastPrice,
		Watchlist: e.Watchlist,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			DoNothing: true,
		}).
		Create(&m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List returns every entry, newest removal first.
func (r *removalLogMySQL) List(ctx context.Context) ([]entity.RemovalEntry, error) {
	var rows []RemovalLogModel
	if err := r.db.WithContext(ctx).
		Order("date DESC, symbol ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.RemovalEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.RemovalEntry{
			ID:        m.ID,
			Symbol:    m.Symbol,
			Date:      m.Date,
			Reason:    m.Reason,
			Status:    m.Status,
			LastPrice: m.LastPrice,
			Watchlist: m.Watchlist,
		})
	}
	return out, nil
}
