// Package usecase implements the business logic for the purge feature.
package usecase

import "errors"

var (
	// ErrEmptySymbolSet is returned when a purge is requested with no symbols.
	ErrEmptySymbolSet = errors.New("symbol set is empty")

	// ErrTableNotFound is returned when the source price table does not exist.
	ErrTableNotFound = errors.New("source table not found")
)
