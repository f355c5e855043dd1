// Package usecase implements security status validation for securities
// flagged by the stale price scan.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	stalenessentity "maintenance_backend/internal/feature/staleness/domain/entity"
	"maintenance_backend/internal/feature/validation/domain/entity"
	"maintenance_backend/internal/shared/ratelimiter"
)

// Classification thresholds.
const (
	suspendedZeroVolDays = 5
	extremePennyPrice    = 0.001
	pennyStockPrice      = 0.05
	pennyStockVolume     = 10000
	suspiciousRunDays    = 10
)

// EnvKeyKnownDelisted names the environment variable carrying the
// comma-separated list of symbols known to be delisted or acquired.
const EnvKeyKnownDelisted = "KNOWN_DELISTED"

// StaleReportSource provides the stale price report a validation run
// classifies against.
type StaleReportSource interface {
	GenerateReport(ctx context.Context, window int) (stalenessentity.Report, error)
}

// QuoteRepository fetches a live quote from an external market data API.
// A nil repository disables the live check.
type QuoteRepository interface {
	LatestQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

type validateUsecase struct {
	stale         StaleReportSource
	quotes        QuoteRepository
	limiter       ratelimiter.RateLimiterInterface
	knownDelisted map[string]struct{}
}

// NewValidateUsecase creates a validation usecase. quotes may be nil when no
// market data API is configured; limiter may be nil to disable throttling.
func NewValidateUsecase(stale StaleReportSource, quotes QuoteRepository, limiter ratelimiter.RateLimiterInterface) *validateUsecase {
	return &validateUsecase{
		stale:         stale,
		quotes:        quotes,
		limiter:       limiter,
		knownDelisted: loadKnownDelisted(),
	}
}

// loadKnownDelisted reads the known-delisted symbol list from the environment.
func loadKnownDelisted() map[string]struct{} {
	out := make(map[string]struct{})
	for _, s := range strings.Split(os.Getenv(EnvKeyKnownDelisted), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out[s] = struct{}{}
		}
	}
	return out
}

// ValidateBatch classifies every security flagged by the stale scan. When
// symbols is non-empty, only those symbols are validated; symbols absent from
// the stale report classify as ACTIVE.
func (u *validateUsecase) ValidateBatch(ctx context.Context, symbols []string, window int) (entity.Report, error) {
	report, err := u.stale.GenerateReport(ctx, window)
	if err != nil {
		return entity.Report{}, fmt.Errorf("%w: %v", ErrStaleReportUnavailable, err)
	}

	bySymbol := make(map[string]stalenessentity.StaleSecurity, len(report.Securities))
	for _, sec := range report.Securities {
		bySymbol[sec.Symbol] = sec
	}

	if len(symbols) == 0 {
		symbols = make([]string, 0, len(report.Securities))
		for _, sec := range report.Securities {
			symbols = append(symbols, sec.Symbol)
		}
	}

	results := make([]entity.Result, 0, len(symbols))
	summary := make(map[string]int)
	for _, symbol := range symbols {
		if u.limiter != nil {
			u.limiter.WaitIfNeeded()
		}

		res := u.validateOne(ctx, symbol, bySymbol)
		results = append(results, res)
		summary[res.Status]++
	}

	slog.Info("validation batch finished", "validated", len(results), "summary", summary)

	return entity.Report{
		Timestamp:      time.Now(),
		TotalValidated: len(results),
		Summary:        summary,
		Results:        results,
	}, nil
}

// validateOne classifies a single symbol. A live quote with positive volume
// overrides the heuristics.
func (u *validateUsecase) validateOne(ctx context.Context, symbol string, stale map[string]stalenessentity.StaleSecurity) entity.Result {
	if u.quotes != nil {
		quote, err := u.quotes.LatestQuote(ctx, symbol)
		if err != nil {
			slog.Warn("live quote check failed, falling back to heuristics", "symbol", symbol, "error", err)
		} else if quote.Volume > 0 {
			return entity.Result{
				Symbol:     symbol,
				Status:     entity.StatusActive,
				Reason:     "Live quote shows active trading",
				LastPrice:  quote.Price,
				Volume:     float64(quote.Volume),
				DataSource: "Quote API",
			}
		}
	}

	return u.heuristic(symbol, stale)
}

// heuristic applies the offline classification rules in severity order.
func (u *validateUsecase) heuristic(symbol string, stale map[string]stalenessentity.StaleSecurity) entity.Result {
	sec, ok := stale[symbol]
	if !ok {
		return entity.Result{
			Symbol:     symbol,
			Status:     entity.StatusActive,
			Reason:     "Not in stale price list",
			DataSource: "Internal",
		}
	}

	res := entity.Result{
		Symbol:    symbol,
		LastPrice: sec.Price,
		Volume:    sec.AvgVolume,
	}

	switch {
	case u.isKnownDelisted(symbol):
		res.Status = entity.StatusDelisted
		res.Reason = "Known delisted security"
		res.DataSource = "Known List"
	case sec.ZeroVolumeDays >= suspendedZeroVolDays:
		res.Status = entity.StatusSuspended
		res.Reason = fmt.Sprintf("%d days with zero volume", sec.ZeroVolumeDays)
		res.DataSource = "Volume Analysis"
	case sec.Price < extremePennyPrice:
		res.Status = entity.StatusDelisted
		res.Reason = "Extreme penny stock (< $0.001)"
		res.DataSource = "Price Analysis"
	case sec.Price < pennyStockPrice && sec.AvgVolume < pennyStockVolume:
		res.Status = entity.StatusAtRisk
		res.Reason = fmt.Sprintf("Penny stock with low volume ($%.4f)", sec.Price)
		res.DataSource = "Risk Analysis"
	case sec.ConsecutiveDays >= suspiciousRunDays:
		res.Status = entity.StatusSuspicious
		res.Reason = fmt.Sprintf("%d days same price", sec.ConsecutiveDays)
		res.DataSource = "Pattern Analysis"
	default:
		res.Status = entity.StatusMonitor
		res.Reason = "Stale price but appears active"
		res.DataSource = "Heuristic"
	}
	return res
}

func (u *validateUsecase) isKnownDelisted(symbol string) bool {
	_, ok := u.knownDelisted[symbol]
	return ok
}
