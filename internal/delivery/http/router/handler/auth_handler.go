// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"learnhub/config"
	"learnhub/internal/delivery/http/response"
	"learnhub/internal/domain/entity"
	"learnhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountView is the wire shape of an account. Never exposes the hash.
type accountView struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func newAccountView(account *entity.Account) accountView {
	return accountView{
		ID:       account.ID.String(),
		FullName: account.FullName,
		Email:    account.Email,
		Role:     string(account.Role),
	}
}

// AuthHandler holds dependencies for identity-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(output.Account), "Account registered successfully")
}

// Login handles the credentials login request.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, map[string]any{
		"token":   output.Token,
		"account": newAccountView(output.Account),
	}, "Login successful")
}

// Logout clears the session cookie. The token itself simply expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GoogleLogin initiates the Google Sign-In flow.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	oauthURL, _ := h.uc.GoogleAuthURL()

	if c.QueryParam("redirect") == "false" {
		// Frontend implementations can drive the consent screen themselves.
		return response.Success(c, http.StatusOK, map[string]string{
			"oauth_url": oauthURL,
		}, "Google OAuth URL generated successfully")
	}

	return c.Redirect(http.StatusTemporaryRedirect, oauthURL)
}

// GoogleCallback completes the Google Sign-In flow. On success the browser
// lands on the content area with a fresh session cookie.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")

	output, err := h.uc.GoogleCallback(c.Request().Context(), state, code)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return c.Redirect(http.StatusTemporaryRedirect, "/documents")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.Session.TTL),
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
