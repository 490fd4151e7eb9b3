package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"learnhub/config"
	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase is a minimal AuthUsecase for handler tests.
type stubAuthUsecase struct {
	registerOutput *usecase.RegisterOutput
	sessionOutput  *usecase.SessionOutput
	err            error

	gotRegisterInput *usecase.RegisterInput
	gotLoginInput    *usecase.LoginInput
}

func (s *stubAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.gotRegisterInput = input

	return s.registerOutput, s.err
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	s.gotLoginInput = input

	return s.sessionOutput, s.err
}

func (s *stubAuthUsecase) GoogleAuthURL() (string, string) {
	return "https://accounts.google.com/o/oauth2/auth?state=test-state", "test-state"
}

func (s *stubAuthUsecase) GoogleCallback(ctx context.Context, state, code string) (*usecase.SessionOutput, error) {
	return s.sessionOutput, s.err
}

func newTestAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			TTL:        time.Hour,
			CookieName: "learnhub_session",
		},
	}

	return NewAuthHandler(uc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthHandler_Register_OmitsCredentialMaterial(t *testing.T) {
	account := &entity.Account{
		ID:           uuid.New(),
		FullName:     "Test Member",
		Email:        "member@example.com",
		PasswordHash: "super-secret-hash",
		Role:         entity.RoleMember,
	}
	handler := newTestAuthHandler(&stubAuthUsecase{registerOutput: &usecase.RegisterOutput{Account: account}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/register",
		strings.NewReader(`{"name":"Test Member","email":"member@example.com","password":"Password123!","confirmPassword":"Password123!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.Register(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "member@example.com")
	assert.NotContains(t, rec.Body.String(), "super-secret-hash")
}

func TestAuthHandler_Register_EmptyBody(t *testing.T) {
	stub := &stubAuthUsecase{err: domainerrors.ErrValidationFailed.WrapMessage("all fields are required")}
	handler := newTestAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	// An empty body must reach the usecase as a zero-value input, not nil.
	err := handler.Register(e.NewContext(req, rec))
	assert.Error(t, err)
	require.NotNil(t, stub.gotRegisterInput)
	assert.Empty(t, stub.gotRegisterInput.Email)
}

func TestAuthHandler_Login_EmptyBody(t *testing.T) {
	stub := &stubAuthUsecase{err: domainerrors.ErrInvalidCredentials.WrapMessage("invalid email or password")}
	handler := newTestAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.Login(e.NewContext(req, rec))
	assert.Error(t, err)
	require.NotNil(t, stub.gotLoginInput)
	assert.Empty(t, stub.gotLoginInput.Email)
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "member@example.com", Role: entity.RoleMember}
	handler := newTestAuthHandler(&stubAuthUsecase{
		sessionOutput: &usecase.SessionOutput{Token: "issued-session-token", Account: account},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"member@example.com","password":"Password123!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.Login(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "learnhub_session", cookies[0].Name)
	assert.Equal(t, "issued-session-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthHandler_Logout_ClearsSessionCookie(t *testing.T) {
	handler := newTestAuthHandler(&stubAuthUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()

	err := handler.Logout(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "learnhub_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_GoogleLogin_RedirectsToConsent(t *testing.T) {
	handler := newTestAuthHandler(&stubAuthUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google", nil)
	rec := httptest.NewRecorder()

	err := handler.GoogleLogin(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "accounts.google.com")
}

func TestAuthHandler_GoogleCallback_SetsCookieAndRedirects(t *testing.T) {
	account := &entity.Account{ID: uuid.New(), Email: "member@example.com", Role: entity.RoleMember}
	handler := newTestAuthHandler(&stubAuthUsecase{
		sessionOutput: &usecase.SessionOutput{Token: "issued-session-token", Account: account},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=test-state&code=auth-code", nil)
	rec := httptest.NewRecorder()

	err := handler.GoogleCallback(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/documents", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "issued-session-token", cookies[0].Value)
}
