package service

import (
	"time"

	"learnhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the identity assertion embedded in a session token.
// The claim is self-contained: guards consult it without a database round trip.
type SessionClaims struct {
	AccountID uuid.UUID
	FullName  string
	Email     string
	Role      entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and consuming session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed session token for the given account.
	Generate(account *entity.Account) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// the embedded claims. Any failure means "no session" to the caller.
	Validate(tokenString string) (*SessionClaims, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
