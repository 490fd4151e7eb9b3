// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"learnhub/config"
	"learnhub/internal/domain/entity"
	"learnhub/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService. A missing signing secret
// is a configuration error, not a per-request failure.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	ttl := 72 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// Generate creates a signed session token embedding the account's identity
// claim. Any later mutation of the payload invalidates the signature.
func (s *jwtService) Generate(account *entity.Account) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		FullName: account.FullName,
		Email:    account.Email,
		Role:     account.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature and expiry of a token string and returns the
// embedded identity claim.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &service.SessionClaims{
		AccountID:        accountID,
		FullName:         claims.FullName,
		Email:            claims.Email,
		Role:             entity.RoleFromString(claims.Role),
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// SessionDuration returns the configured session lifetime.
func (s *jwtService) SessionDuration() time.Duration {
	return s.sessionTTL
}

// sessionClaims is the wire shape of the session claim.
type sessionClaims struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
