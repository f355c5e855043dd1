// Package entity defines the domain model for cleanup recommendations.
package entity

import "time"

// Action identifiers for cleanup recommendations.
const (
	ActionRemoveDelisted     = "REMOVE_DELISTED"
	ActionReviewSuspended    = "REVIEW_SUSPENDED"
	ActionPennyStockReview   = "PENNY_STOCK_REVIEW"
	ActionDataQualityCheck   = "DATA_QUALITY_CHECK"
	ActionGeneralMaintenance = "GENERAL_MAINTENANCE"
)

// Priority levels for cleanup actions.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Urgency levels assigned to a cleanup report as a whole.
const (
	UrgencyImmediate = "IMMEDIATE"
	UrgencyModerate  = "MODERATE"
	UrgencyLow       = "LOW"
)

// CleanupAction is one actionable maintenance recommendation.
type CleanupAction struct {
	Priority        string   `json:"priority"`
	Action          string   `json:"action"`
	Description     string   `json:"description"`
	AffectedSymbols []string `json:"affected_symbols,omitempty"`
	EstimatedTime   string   `json:"estimated_cleanup_time"`
	DataSavings     string   `json:"data_savings,omitempty"`
	Recommendation  string   `json:"recommendation,omitempty"`
}

// ScheduleItem is one entry in the recommended maintenance cadence.
type ScheduleItem struct {
	Frequency     string `json:"frequency"`
	Task          string `json:"task"`
	Automation    string `json:"automation"`
	EstimatedTime string `json:"estimated_time"`
}

// RiskAssessment summarizes overall database health.
type RiskAssessment struct {
	OverallRisk      string  `json:"overall_risk"`
	StalePercentage  float64 `json:"stale_percentage"`
	DataQualityScore int     `json:"data_quality_score"`
	Urgency          string  `json:"recommendations_urgency"`
}

// AnalysisSummary counts the inputs the recommendations were derived from.
type AnalysisSummary struct {
	TotalSecurities     int64 `json:"total_securities"`
	StaleSecurities     int   `json:"stale_securities"`
	ValidatedSecurities int   `json:"validated_securities"`
}

// CleanupReport is the full recommendations output.
type CleanupReport struct {
	Timestamp           time.Time       `json:"timestamp"`
	AnalysisSummary     AnalysisSummary `json:"analysis_summary"`
	CleanupActions      []CleanupAction `json:"cleanup_actions"`
	MaintenanceSchedule []ScheduleItem  `json:"maintenance_schedule"`
	RiskAssessment      RiskAssessment  `json:"risk_assessment"`
}
