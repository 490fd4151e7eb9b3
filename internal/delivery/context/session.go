package context

import (
	"learnhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// GetSession extracts the authenticated session claims from echo.Context.
// Returns nil when no guard has attached a session to the request.
func GetSession(c echo.Context) *service.SessionClaims {
	if claims, ok := c.Get(string(KeySession)).(*service.SessionClaims); ok {
		return claims
	}

	return nil
}

// SetSession attaches the session claims to echo.Context for handlers to use.
func SetSession(c echo.Context, claims *service.SessionClaims) {
	c.Set(string(KeySession), claims)
}
