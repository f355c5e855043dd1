// Package usecase combines the stale price scan and security validation into
// actionable database cleanup recommendations.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"maintenance_backend/internal/feature/recommendations/domain/entity"
	stalenessentity "maintenance_backend/internal/feature/staleness/domain/entity"
	validationentity "maintenance_backend/internal/feature/validation/domain/entity"
)

// Risk thresholds on the number of stale securities.
const (
	highRiskStaleCount   = 50
	mediumRiskStaleCount = 10
)

// Rough estimate of daily price rows per security, used for the data-savings
// figure in the REMOVE_DELISTED action.
const recordsPerSecurity = 200

// StaleReportSource provides the stale price report.
type StaleReportSource interface {
	GenerateReport(ctx context.Context, window int) (stalenessentity.Report, error)
}

// ValidationSource runs the security status validation batch.
type ValidationSource interface {
	ValidateBatch(ctx context.Context, symbols []string, window int) (validationentity.Report, error)
}

// SymbolCounter reports how many distinct securities the price table holds.
type SymbolCounter interface {
	CountDistinctSymbols(ctx context.Context) (int64, error)
}

// RemovalLogger records securities confirmed as delisted.
type RemovalLogger interface {
	LogRemoval(ctx context.Context, symbol, reason, status string, lastPrice float64, watchlist string) (bool, error)
}

// ScriptRenderer renders the reviewable SQL cleanup script for a symbol set.
// The purge feature supplies the canonical implementation.
type ScriptRenderer func(symbols []string, generatedAt time.Time) string

type recommendUsecase struct {
	stale      StaleReportSource
	validation ValidationSource
	counter    SymbolCounter
	removals   RemovalLogger
	render     ScriptRenderer
}

// NewRecommendUsecase creates a new recommendUsecase instance. removals may
// be nil to disable auto-logging.
func NewRecommendUsecase(stale StaleReportSource, validation ValidationSource, counter SymbolCounter, removals RemovalLogger, render ScriptRenderer) *recommendUsecase {
	return &recommendUsecase{
		stale:      stale,
		validation: validation,
		counter:    counter,
		removals:   removals,
		render:     render,
	}
}

// GenerateReport produces the full cleanup recommendations report for the
// given scan window. Confirmed DELISTED securities are appended to the
// removal log as a side effect.
func (u *recommendUsecase) GenerateReport(ctx context.Context, window int) (entity.CleanupReport, error) {
	staleReport, err := u.stale.GenerateReport(ctx, window)
	if err != nil {
		return entity.CleanupReport{}, fmt.Errorf("stale report: %w", err)
	}

	validationReport, err := u.validation.ValidateBatch(ctx, nil, window)
	if err != nil {
		return entity.CleanupReport{}, fmt.Errorf("validation: %w", err)
	}

	totalSecurities, err := u.counter.CountDistinctSymbols(ctx)
	if err != nil {
		return entity.CleanupReport{}, fmt.Errorf("count securities: %w", err)
	}

	u.logDelisted(ctx, validationReport.Results)

	actions := buildActions(validationReport.Results)
	staleCount := staleReport.Summary.TotalFlagged

	report := entity.CleanupReport{
		Timestamp: time.Now(),
		AnalysisSummary: entity.AnalysisSummary{
			TotalSecurities:     totalSecurities,
			StaleSecurities:     staleCount,
			ValidatedSecurities: validationReport.TotalValidated,
		},
		CleanupActions:      actions,
		MaintenanceSchedule: maintenanceSchedule(),
		RiskAssessment:      assessRisk(staleCount, totalSecurities, actions),
	}

	slog.Info("cleanup recommendations generated",
		"stale", staleCount,
		"actions", len(actions),
		"urgency", report.RiskAssessment.Urgency)

	return report, nil
}

// RenderCleanupScript validates the current stale set and renders the SQL
// cleanup script for the confirmed delisted symbols.
func (u *recommendUsecase) RenderCleanupScript(ctx context.Context, window int) (string, error) {
	validationReport, err := u.validation.ValidateBatch(ctx, nil, window)
	if err != nil {
		return "", fmt.Errorf("validation: %w", err)
	}

	delisted := symbolsWithStatus(validationReport.Results, validationentity.StatusDelisted)
	if len(delisted) == 0 {
		return "", ErrNoDelistedSecurities
	}

	u.logDelisted(ctx, validationReport.Results)

	return u.render(delisted, time.Now()), nil
}

// logDelisted appends every DELISTED validation result to the removal log.
// Failures are logged and skipped so one bad row cannot abort the report.
func (u *recommendUsecase) logDelisted(ctx context.Context, results []validationentity.Result) {
	if u.removals == nil {
		return
	}
	for _, r := range results {
		if r.Status != validationentity.StatusDelisted {
			continue
		}
		if _, err := u.removals.LogRemoval(ctx, r.Symbol, r.Reason, r.Status, r.LastPrice, ""); err != nil {
			slog.Warn("failed to log removal", "symbol", r.Symbol, "error", err)
		}
	}
}

func symbolsWithStatus(results []validationentity.Result, status string) []string {
	var out []string
	for _, r := range results {
		if r.Status == status {
			out = append(out, r.Symbol)
		}
	}
	return out
}

// buildActions derives the cleanup action list from the validation results.
// The two standing actions (data quality, general maintenance) are always
// included.
func buildActions(results []validationentity.Result) []entity.CleanupAction {
	var actions []entity.CleanupAction

	if delisted := symbolsWithStatus(results, validationentity.StatusDelisted); len(delisted) > 0 {
		actions = append(actions, entity.CleanupAction{
			Priority:        entity.PriorityHigh,
			Action:          entity.ActionRemoveDelisted,
			Description:     fmt.Sprintf("Remove %d confirmed delisted securities", len(delisted)),
			AffectedSymbols: delisted,
			EstimatedTime:   "15 minutes",
			DataSavings:     fmt.Sprintf("~%d records", len(delisted)*recordsPerSecurity),
		})
	}

	if suspended := symbolsWithStatus(results, validationentity.StatusSuspended); len(suspended) > 0 {
		actions = append(actions, entity.CleanupAction{
			Priority:        entity.PriorityMedium,
			Action:          entity.ActionReviewSuspended,
			Description:     fmt.Sprintf("Review %d suspended securities", len(suspended)),
			AffectedSymbols: suspended,
			EstimatedTime:   "30 minutes",
			Recommendation:  "Monitor for 30 days, then remove if still suspended",
		})
	}

	if penny := symbolsWithStatus(results, validationentity.StatusAtRisk); len(penny) > 0 {
		actions = append(actions, entity.CleanupAction{
			Priority:        entity.PriorityMedium,
			Action:          entity.ActionPennyStockReview,
			Description:     fmt.Sprintf("Review %d securities under $1.00", len(penny)),
			AffectedSymbols: penny,
			EstimatedTime:   "45 minutes",
			Recommendation:  "Consider removing from watchlist if consistently under $1.00",
		})
	}

	actions = append(actions,
		entity.CleanupAction{
			Priority:       entity.PriorityMedium,
			Action:         entity.ActionDataQualityCheck,
			Description:    "Implement automated stale price monitoring",
			EstimatedTime:  "2 hours",
			Recommendation: "Add daily automated checks for stale prices",
		},
		entity.CleanupAction{
			Priority:       entity.PriorityLow,
			Action:         entity.ActionGeneralMaintenance,
			Description:    "Optimize database structure and indexing",
			EstimatedTime:  "1 hour",
			Recommendation: "Monthly database optimization",
		},
	)

	return actions
}

func maintenanceSchedule() []entity.ScheduleItem {
	return []entity.ScheduleItem{
		{Frequency: "DAILY", Task: "Run stale price detection", Automation: "Automated", EstimatedTime: "5 minutes"},
		{Frequency: "WEEKLY", Task: "Review flagged securities", Automation: "Manual", EstimatedTime: "30 minutes"},
		{Frequency: "MONTHLY", Task: "Database optimization and cleanup", Automation: "Semi-automated", EstimatedTime: "2 hours"},
		{Frequency: "QUARTERLY", Task: "Comprehensive data quality audit", Automation: "Manual", EstimatedTime: "4 hours"},
	}
}

func assessRisk(staleCount int, totalSecurities int64, actions []entity.CleanupAction) entity.RiskAssessment {
	risk := stalenessentity.RiskLow
	switch {
	case staleCount > highRiskStaleCount:
		risk = stalenessentity.RiskHigh
	case staleCount > mediumRiskStaleCount:
		risk = stalenessentity.RiskMedium
	}

	var stalePct float64
	if totalSecurities > 0 {
		stalePct = math.Round(float64(staleCount)/float64(totalSecurities)*100*100) / 100
	}

	score := 100 - staleCount*2
	if score < 0 {
		score = 0
	}

	return entity.RiskAssessment{
		OverallRisk:      risk,
		StalePercentage:  stalePct,
		DataQualityScore: score,
		Urgency:          urgency(actions),
	}
}

// urgency is IMMEDIATE when any high-priority action exists, MODERATE when
// the action list is long, LOW otherwise.
func urgency(actions []entity.CleanupAction) string {
	for _, a := range actions {
		if a.Priority == entity.PriorityHigh {
			return entity.UrgencyImmediate
		}
	}
	if len(actions) > 3 {
		return entity.UrgencyModerate
	}
	return entity.UrgencyLow
}
