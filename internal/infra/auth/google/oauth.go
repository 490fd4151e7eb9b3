// Package google implements the federated login flow against Google's OAuth endpoints.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"learnhub/config"
	"learnhub/internal/domain/service"

	"github.com/pkg/errors"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// stateTTL bounds how long a pending consent redirect stays valid.
const stateTTL = 10 * time.Minute

// OAuthService handles the Google OAuth code flow.
type OAuthService struct {
	oauth *oauth2.Config

	// State storage for CSRF protection.
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Google OAuth service.
func NewOAuthService(cfg *config.Config) (service.OAuthService, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" || cfg.GoogleOAuth.ClientSecret == "" {
		return nil, errors.New("google oauth client credentials must be provided")
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     googleoauth.Endpoint,
		},
		stateStore: make(map[string]time.Time),
	}, nil
}

// BuildAuthorizationURL constructs the Google consent URL with a fresh state
// parameter, stored for validation on the callback.
func (s *OAuthService) BuildAuthorizationURL() (string, string) {
	state := s.generateState()
	s.storeState(state)

	return s.oauth.AuthCodeURL(state), state
}

// ValidateState checks and consumes a state parameter. Each state is single
// use to prevent replay.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// ResolveUser exchanges the authorization code and fetches the authenticated
// user's profile from Google's userinfo endpoint.
func (s *OAuthService) ResolveUser(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	resp, err := s.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	if googleUser.Email == "" {
		return nil, errors.New("google profile carries no email")
	}

	return &service.OAuthUser{
		ID:            googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
	}, nil
}

// generateState generates a cryptographically secure random state string.
func (s *OAuthService) generateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// storeState stores a state parameter with expiration time.
func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)

	// Clean up expired states opportunistically.
	now := time.Now()
	for pending, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, pending)
		}
	}
}
