// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"learnhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginInput defines the data required for a credentials login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// SessionOutput returns the issued session token after a successful login.
type SessionOutput struct {
	Token   string
	Account *entity.Account
}

// AuthUsecase defines the identity operations the delivery layer depends on:
// credential verification, federated provisioning, and session issuance.
type AuthUsecase interface {
	// Register creates a new account from explicit registration input.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies a claimed email/password pair and issues a session.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// GoogleAuthURL starts the federated flow: consent URL plus CSRF state.
	GoogleAuthURL() (url string, state string)

	// GoogleCallback completes the federated flow: validates state, resolves
	// the provider identity, provisions an account on first sight, and
	// issues a session.
	GoogleCallback(ctx context.Context, state, code string) (*SessionOutput, error)
}
