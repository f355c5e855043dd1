// Package usecase implements the stale price scan.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"maintenance_backend/internal/feature/staleness/domain/entity"
)

const (
	// DefaultWindow is the number of recent trading days scanned.
	DefaultWindow = 10
	// MaxWindow bounds the scan window accepted from callers.
	MaxWindow = 60
	// minBars is the minimum number of rows a symbol needs in the window
	// to be analyzed at all.
	minBars = 5
	// minStaleRun is the shortest run of equal closes that gets flagged.
	minStaleRun = 3
	// maxReported caps the securities included in a report.
	maxReported = 50
	// priceTolerance treats closes within this delta as equal,
	// absorbing float noise in the stored prices.
	priceTolerance = 1e-4
)

// PriceHistoryRepository abstracts the read side of the daily price table.
// Following Go convention, the interface is defined by the consumer (usecase).
type PriceHistoryRepository interface {
	// RecentHistory returns all rows for the last `window` distinct trading
	// dates, ordered by symbol then date ascending.
	RecentHistory(ctx context.Context, window int) ([]entity.PriceBar, error)
}

// scanUsecase detects securities with stale prices.
type scanUsecase struct {
	prices PriceHistoryRepository
}

// NewScanUsecase creates a new scanUsecase instance.
func NewScanUsecase(prices PriceHistoryRepository) *scanUsecase {
	return &scanUsecase{prices: prices}
}

// GenerateReport scans the last `window` trading days and reports every
// security whose close did not move for minStaleRun or more consecutive days.
func (su *scanUsecase) GenerateReport(ctx context.Context, window int) (entity.Report, error) {
	if window <= 0 || window > MaxWindow {
		window = DefaultWindow
	}

	bars, err := su.prices.RecentHistory(ctx, window)
	if err != nil {
		return entity.Report{}, fmt.Errorf("load recent history: %w", err)
	}

	bySymbol := map[string][]entity.PriceBar{}
	for _, b := range bars {
		bySymbol[b.Symbol] = append(bySymbol[b.Symbol], b)
	}

	var flagged []entity.StaleSecurity
	for symbol, series := range bySymbol {
		if len(series) < minBars {
			continue
		}
		if sec, ok := analyze(symbol, series); ok {
			flagged = append(flagged, sec)
		}
	}

	// Worst first: by risk level, then thinnest volume.
	riskOrder := map[string]int{entity.RiskHigh: 0, entity.RiskMedium: 1, entity.RiskLow: 2}
	sort.Slice(flagged, func(i, j int) bool {
		if riskOrder[flagged[i].RiskLevel] != riskOrder[flagged[j].RiskLevel] {
			return riskOrder[flagged[i].RiskLevel] < riskOrder[flagged[j].RiskLevel]
		}
		return flagged[i].AvgVolume < flagged[j].AvgVolume
	})

	summary := entity.Summary{TotalFlagged: len(flagged)}
	for _, s := range flagged {
		switch s.RiskLevel {
		case entity.RiskHigh:
			summary.HighRisk++
		case entity.RiskMedium:
			summary.MediumRisk++
		default:
			summary.LowRisk++
		}
	}

	if len(flagged) > maxReported {
		flagged = flagged[:maxReported]
	}

	slog.Info("stale price scan complete",
		"window", window,
		"symbols_analyzed", len(bySymbol),
		"flagged", summary.TotalFlagged,
		"high_risk", summary.HighRisk,
	)

	return entity.Report{
		GeneratedAt:     time.Now(),
		Window:          window,
		Summary:         summary,
		Securities:      flagged,
		Recommendations: buildRecommendations(flagged),
	}, nil
}

// analyze finds the longest run of equal closes in a symbol's series.
// The series must be ordered by date ascending.
func analyze(symbol string, series []entity.PriceBar) (entity.StaleSecurity, bool) {
	runLen := 1
	maxRun := 1
	maxStart := 0
	stalePrice := series[0].Close

	for i := 1; i < len(series); i++ {
		if math.Abs(series[i].Close-series[i-1].Close) < priceTolerance {
			runLen++
			if runLen > maxRun {
				maxRun = runLen
				maxStart = i - runLen + 1
				stalePrice = series[i].Close
			}
		} else {
			runLen = 1
		}
	}

	if maxRun < minStaleRun {
		return entity.StaleSecurity{}, false
	}

	var volSum float64
	zeroVolDays := 0
	for _, b := range series[maxStart : maxStart+maxRun] {
		volSum += float64(b.Volume)
		if b.Volume == 0 {
			zeroVolDays++
		}
	}
	avgVolume := volSum / float64(maxRun)

	riskLevel := entity.RiskLow
	switch {
	case zeroVolDays >= 2:
		riskLevel = entity.RiskHigh
	case avgVolume < 1000:
		riskLevel = entity.RiskMedium
	case stalePrice < 0.01:
		riskLevel = entity.RiskHigh
	}

	return entity.StaleSecurity{
		Symbol:          symbol,
		Price:           stalePrice,
		ConsecutiveDays: maxRun,
		AvgVolume:       avgVolume,
		ZeroVolumeDays:  zeroVolDays,
		RiskLevel:       riskLevel,
		LastDate:        series[len(series)-1].Date,
	}, true
}

// buildRecommendations derives follow-up actions from the flagged set.
func buildRecommendations(flagged []entity.StaleSecurity) []entity.Recommendation {
	var recs []entity.Recommendation

	var high, medium, penny []string
	for _, s := range flagged {
		switch s.RiskLevel {
		case entity.RiskHigh:
			high = append(high, s.Symbol)
		case entity.RiskMedium:
			medium = append(medium, s.Symbol)
		}
		if s.Price < 0.01 {
			penny = append(penny, s.Symbol)
		}
	}

	if len(high) > 0 {
		recs = append(recs, entity.Recommendation{
			Action:      "IMMEDIATE_REVIEW",
			Description: fmt.Sprintf("Review %d high-risk securities with zero/minimal volume", len(high)),
			Symbols:     capSymbols(high, 10),
			Priority:    entity.RiskHigh,
		})
	}
	if len(medium) > 0 {
		recs = append(recs, entity.Recommendation{
			Action:      "MONITOR",
			Description: fmt.Sprintf("Monitor %d medium-risk securities for delisting", len(medium)),
			Symbols:     capSymbols(medium, 10),
			Priority:    entity.RiskMedium,
		})
	}
	if len(penny) > 0 {
		recs = append(recs, entity.Recommendation{
			Action:      "PENNY_STOCK_REVIEW",
			Description: fmt.Sprintf("Review %d securities under $0.01", len(penny)),
			Symbols:     penny,
			Priority:    entity.RiskMedium,
		})
	}

	return recs
}

func capSymbols(symbols []string, n int) []string {
	if len(symbols) > n {
		return symbols[:n]
	}
	return symbols
}
