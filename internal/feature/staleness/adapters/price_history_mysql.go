// Package adapters provides the repository implementations for the staleness feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"maintenance_backend/internal/feature/staleness/domain/entity"
	"maintenance_backend/internal/feature/staleness/usecase"
)

// DailyPriceModel is the gorm model for the daily_prices table.
type DailyPriceModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:daily_sym_date,priority:1;index"`
	Date   time.Time `gorm:"not null;uniqueIndex:daily_sym_date,priority:2"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

func (DailyPriceModel) TableName() string {
	return "daily_prices"
}

// priceHistoryMySQL reads daily price rows for the stale scan.
type priceHistoryMySQL struct {
	db *gorm.DB
}

var _ usecase.PriceHistoryRepository = (*priceHistoryMySQL)(nil)

// NewPriceHistoryRepository creates a new priceHistoryMySQL instance.
func NewPriceHistoryRepository(db *gorm.DB) *priceHistoryMySQL {
	return &priceHistoryMySQL{db: db}
}

// RecentHistory returns every row belonging to the last `window` distinct
// trading dates, ordered by symbol then date ascending.
func (r *priceHistoryMySQL) RecentHistory(ctx context.Context, window int) ([]entity.PriceBar, error) {
	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&DailyPriceModel{}).
		Distinct("date").
		Order("date DESC").
		Limit(window).
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}

	var rows []DailyPriceModel
	if err := r.db.WithContext(ctx).
		Where("date IN ?", dates).
		Order("symbol ASC, date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.PriceBar, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.PriceBar{
			Symbol: m.Symbol,
			Date:   m.Date,
			Close:  m.Close,
			Volume: m.Volume,
		})
	}
	return out, nil
}

// CountDistinctSymbols returns the number of securities present in the table.
func (r *priceHistoryMySQL) CountDistinctSymbols(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&DailyPriceModel{}).
		Distinct("symbol").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
