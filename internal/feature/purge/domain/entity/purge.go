// Package entity defines the domain types for the purge feature.
package entity

import "time"

// PurgeResult reports what a purge run did.
//
// BackedUp counts the rows copied into the backup table. Deleted counts the
// rows removed from the source table and is always zero for unconfirmed runs.
type PurgeResult struct {
	RunID     string
	Symbols   []string
	BackedUp  int64
	Deleted   int64
	Confirmed bool
	StartedAt time.Time
}
