// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	Age      int
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token string
}

// AccountUsecase defines the interface for account-related business
// operations. This is the contract the delivery layer depends on.
type AccountUsecase interface {
	// Register validates the input, enforces the age gate, hashes the
	// password and creates the account. No token is issued; registration
	// is not a login.
	Register(ctx context.Context, input *RegisterInput) error

	// Login verifies the credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
