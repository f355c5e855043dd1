// Package usecase implements the append-only removal log.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"maintenance_backend/internal/feature/removallog/domain/entity"
)

// ErrSymbolRequired is returned when a removal is logged without a symbol.
var ErrSymbolRequired = errors.New("symbol is required")

// RemovalLogRepository persists removal entries. Save must be a no-op when
// the symbol is already logged.
type RemovalLogRepository interface {
	Save(ctx context.Context, e entity.RemovalEntry) (created bool, err error)
	List(ctx context.Context) ([]entity.RemovalEntry, error)
}

type removalUsecase struct {
	repo RemovalLogRepository
}

// NewRemovalUsecase creates a new removalUsecase instance.
func NewRemovalUsecase(repo RemovalLogRepository) *removalUsecase {
	return &removalUsecase{repo: repo}
}

// LogRemoval appends an entry for symbol unless one already exists.
// An empty watchlist falls back to the default. Returns true when a new
// entry was written.
func (u *removalUsecase) LogRemoval(ctx context.Context, symbol, reason, status string, lastPrice float64, watchlist string) (bool, error) {
	if symbol == "" {
		return false, ErrSymbolRequired
	}
	if watchlist == "" {
		watchlist = entity.DefaultWatchlist
	}

	created, err := u.repo.Save(ctx, entity.RemovalEntry{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Date:      time.Now(),
		Reason:    reason,
		Status:    status,
		LastPrice: lastPrice,
		Watchlist: watchlist,
	})
	if err != nil {
		return false, fmt.Errorf("log removal: %w", err)
	}
	if created {
		slog.Info("removal logged", "symbol", symbol, "status", status)
	}
	return created, nil
}

// List returns every logged removal, newest first.
func (u *removalUsecase) List(ctx context.Context) ([]entity.RemovalEntry, error) {
	return u.repo.List(ctx)
}
