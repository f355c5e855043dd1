// Package entity defines the domain types for stale price analysis.
package entity

import "time"

// Risk levels assigned to securities with stale prices.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

// PriceBar is one daily price row used by the stale scan.
type PriceBar struct {
	Symbol string
	Date   time.Time
	Close  float64
	Volume int64
}

// StaleSecurity describes a security whose closing price has not moved
// for several consecutive trading days.
type StaleSecurity struct {
	Symbol          string    `json:"symbol"`
	Price           float64   `json:"price"`
	ConsecutiveDays int       `json:"consecutive_days"`
	AvgVolume       float64   `json:"avg_volume"`
	ZeroVolumeDays  int       `json:"zero_volume_days"`
	RiskLevel       string    `json:"risk_level"`
	LastDate        time.Time `json:"last_date"`
}

// Summary aggregates the flagged securities by risk level.
type Summary struct {
	TotalFlagged int `json:"total_flagged"`
	HighRisk     int `json:"high_risk"`
	MediumRisk   int `json:"medium_risk"`
	LowRisk      int `json:"low_risk"`
}

// Recommendation is a suggested follow-up action derived from the scan.
type Recommendation struct {
	Action      string   `json:"action"`
	Description string   `json:"description"`
	Symbols     []string `json:"symbols,omitempty"`
	Priority    string   `json:"priority"`
}

// Report is the full output of a stale price scan.
type Report struct {
	GeneratedAt     time.Time        `json:"generated_at"`
	Window          int              `json:"window"`
	Summary         Summary          `json:"summary"`
	Securities      []StaleSecurity  `json:"securities"`
	Recommendations []Recommendation `json:"recommendations"`
}
