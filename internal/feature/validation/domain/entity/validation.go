// Package entity defines the domain model for security status validation.
package entity

import "time"

// Security status classifications, ordered from most to least severe.
const (
	StatusDelisted   = "DELISTED"
	StatusSuspended  = "SUSPENDED"
	StatusAtRisk     = "AT_RISK"
	StatusSuspicious = "SUSPICIOUS"
	StatusMonitor    = "MONITOR"
	StatusActive     = "ACTIVE"
	StatusUnknown    = "UNKNOWN"
)

// Quote is the latest trade data returned by an external market data API.
type Quote struct {
	Symbol string
	Price  float64
	Volume int64
}

// Result is the validation outcome for a single security.
type Result struct {
	Symbol     string  `json:"symbol"`
	Status     string  `json:"status"`
	Reason     string  `json:"reason"`
	LastPrice  float64 `json:"last_price"`
	Volume     float64 `json:"volume"`
	DataSource string  `json:"data_source"`
}

// Report aggregates the results of a batch validation run.
type Report struct {
	Timestamp      time.Time      `json:"timestamp"`
	TotalValidated int            `json:"total_validated"`
	Summary        map[string]int `json:"summary"`
	Results        []Result       `json:"results"`
}
