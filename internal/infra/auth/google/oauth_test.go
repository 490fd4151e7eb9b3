package google

import (
	"testing"
	"time"

	"learnhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuthService(t *testing.T) *OAuthService {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{
			ClientID:     "test-client-id",
			ClientSecret: "test-client-secret",
			RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
		},
	}

	svc, err := NewOAuthService(cfg)
	require.NoError(t, err)

	return svc.(*OAuthService)
}

func TestNewOAuthService_MissingCredentials(t *testing.T) {
	svc, err := NewOAuthService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestOAuthService_BuildAuthorizationURL(t *testing.T) {
	svc := newTestOAuthService(t)

	url, state := svc.BuildAuthorizationURL()
	assert.NotEmpty(t, state)
	assert.Contains(t, url, "accounts.google.com")
	assert.Contains(t, url, "client_id=test-client-id")
	assert.Contains(t, url, "state="+state)
}

func TestOAuthService_ValidateState_SingleUse(t *testing.T) {
	svc := newTestOAuthService(t)

	_, state := svc.BuildAuthorizationURL()

	// First use succeeds, replay fails.
	assert.True(t, svc.ValidateState(state))
	assert.False(t, svc.ValidateState(state))
}

func TestOAuthService_ValidateState_UnknownState(t *testing.T) {
	svc := newTestOAuthService(t)

	assert.False(t, svc.ValidateState("state-that-was-never-issued"))
}

func TestOAuthService_ValidateState_Expired(t *testing.T) {
	svc := newTestOAuthService(t)

	_, state := svc.BuildAuthorizationURL()

	svc.stateMutex.Lock()
	svc.stateStore[state] = time.Now().Add(-time.Minute)
	svc.stateMutex.Unlock()

	assert.False(t, svc.ValidateState(state))
}

func TestOAuthService_StatesAreUnique(t *testing.T) {
	svc := newTestOAuthService(t)

	_, first := svc.BuildAuthorizationURL()
	_, second := svc.BuildAuthorizationURL()
	assert.NotEqual(t, first, second)
}
