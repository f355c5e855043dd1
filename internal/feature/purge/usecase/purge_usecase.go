package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"maintenance_backend/internal/feature/purge/domain/entity"
)

// PriceTableRepository abstracts the backup-then-delete operation on the
// price table. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type PriceTableRepository interface {
	// HasSourceTable reports whether the source price table exists.
	HasSourceTable(ctx context.Context) (bool, error)

	// BackupAndDelete copies every row matching the symbols into the backup
	// table (creating it with the source schema when absent) and, only when
	// confirmed, deletes those rows from the source table. Both steps run in
	// one transaction.
	BackupAndDelete(ctx context.Context, symbols []string, confirmed bool) (backedUp, deleted int64, err error)
}

// purgeUsecase performs the guarded purge of delisted securities.
type purgeUsecase struct {
	prices PriceTableRepository
}

// NewPurgeUsecase creates a new purgeUsecase instance.
func NewPurgeUsecase(prices PriceTableRepository) *purgeUsecase {
	return &purgeUsecase{prices: prices}
}

// Purge backs up all rows for the given symbols and, when confirmed, removes
// them from the source table. No row is ever deleted without its backup copy
// being persisted in the same transaction.
//
// An unconfirmed run only performs the backup step, leaving the source table
// untouched; re-running is safe and appends to the backup table.
func (pu *purgeUsecase) Purge(ctx context.Context, symbols []string, confirmed bool) (entity.PurgeResult, error) {
	symbols = normalizeSymbols(symbols)
	if len(symbols) == 0 {
		return entity.PurgeResult{}, ErrEmptySymbolSet
	}

	ok, err := pu.prices.HasSourceTable(ctx)
	if err != nil {
		return entity.PurgeResult{}, fmt.Errorf("check source table: %w", err)
	}
	if !ok {
		return entity.PurgeResult{}, ErrTableNotFound
	}

	result := entity.PurgeResult{
		RunID:     uuid.NewString(),
		Symbols:   symbols,
		Confirmed: confirmed,
		StartedAt: time.Now(),
	}

	backedUp, deleted, err := pu.prices.BackupAndDelete(ctx, symbols, confirmed)
	if err != nil {
		return entity.PurgeResult{}, fmt.Errorf("purge symbols: %w", err)
	}
	result.BackedUp = backedUp
	result.Deleted = deleted

	slog.Info("purge run finished",
		"run_id", result.RunID,
		"symbols", len(symbols),
		"backed_up", backedUp,
		"deleted", deleted,
		"confirmed", confirmed,
	)

	return result, nil
}

// normalizeSymbols drops empty entries and duplicates while preserving order.
// Matching stays case-sensitive and exact.
func normalizeSymbols(symbols []string) []string {
	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
