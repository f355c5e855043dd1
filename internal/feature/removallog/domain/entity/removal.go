// Package entity defines the domain model for the removal log.
package entity

import "time"

// DefaultWatchlist is the watchlist a removal is attributed to when the
// caller does not name one.
const DefaultWatchlist = "my_main_512.txt"

// RemovalEntry records a security removed (or slated for removal) from the
// price database.
type RemovalEntry struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	LastPrice float64   `json:"last_price"`
	Watchlist string    `json:"watchlist"`
}
