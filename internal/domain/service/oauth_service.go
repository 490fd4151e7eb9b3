package service

import (
	"context"
)

// OAuthUser represents the identity assertion returned by an OAuth provider.
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email         string // User's email address.
	Name          string // User's display name.
	AvatarURL     string // URL to the user's profile picture.
	EmailVerified bool   // Whether the provider asserts the email is verified.
}

// OAuthService defines the interface for the federated login flow.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider consent URL. The returned
	// state parameter is stored for CSRF validation on the callback.
	BuildAuthorizationURL() (url string, state string)

	// ValidateState checks and consumes a state parameter from a callback.
	ValidateState(state string) bool

	// ResolveUser exchanges an authorization code for tokens and fetches the
	// provider's profile for the authenticated user.
	ResolveUser(ctx context.Context, code string) (*OAuthUser, error)
}
