package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"maintenance_backend/internal/feature/auth/domain/entity"
)

// minPasswordLength is the minimum accepted operator password length.
const minPasswordLength = 8

// OperatorRepository abstracts the persistence layer for operators.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type OperatorRepository interface {
	// Create persists a new operator. It returns ErrEmailAlreadyExists when
	// the email is already registered.
	Create(ctx context.Context, op *entity.Operator) error

	// FindByEmail retrieves the operator matching the given email.
	// It returns ErrOperatorNotFound when no operator exists.
	FindByEmail(ctx context.Context, email string) (*entity.Operator, error)
}

// JWTGenerator produces signed tokens for authenticated operators.
type JWTGenerator interface {
	GenerateToken(operatorID uint, email string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	operators    OperatorRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(operators OperatorRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		operators:    operators,
		jwtGenerator: jwtGenerator,
	}
}

// validatePassword checks the password against the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// EnsureOperator registers the bootstrap operator if the email is not yet
// known. It is called at startup with credentials from the environment, so an
// already-registered email is not an error.
func (u *authUsecase) EnsureOperator(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	op := &entity.Operator{Email: email, Password: string(hashed)}
	if err := u.operators.Create(ctx, op); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	slog.Info("bootstrap operator registered", "email", email)
	return nil
}

// Login authenticates an operator and returns a signed JWT on success.
// A bcrypt comparison always runs, even when the operator does not exist, to
// keep response timing uniform.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	op, err := u.operators.FindByEmail(ctx, email)

	// Dummy hash compared when the operator is unknown.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = op.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(op.ID, op.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
