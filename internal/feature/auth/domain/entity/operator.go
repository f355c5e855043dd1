// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Operator represents a maintenance operator allowed to run destructive
// operations such as the purge.
type Operator struct {
	// ID is the unique identifier for the operator.
	ID uint

	// Email is the operator's email address used for authentication.
	// It must be unique across all operators.
	Email string

	// Password is the bcrypt hash of the operator's password.
	// This never stores plaintext passwords.
	Password string

	// CreatedAt is the timestamp when the operator was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the operator was last updated.
	UpdatedAt time.Time
}
