// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrOperatorNotFound is returned when an operator cannot be found by email.
	ErrOperatorNotFound = errors.New("operator not found")

	// ErrEmailAlreadyExists is returned when attempting to create an operator with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on any failed login attempt. It stays
	// generic so the response does not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
