package middleware

import (
	"net/http"
	"strings"

	"learnhub/config"
	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/delivery/http/response"
	"learnhub/internal/domain/entity"
	"learnhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Pages that only make sense without a session. A signed-in visitor is
// bounced straight to the content area.
var authPages = []string{"/login", "/register"}

// Protected page prefixes. Matching is by path prefix, so nested pages such
// as /videos/watch and /documents/uploader are covered by their parents.
var protectedPrefixes = []string{"/documents", "/videos", "/admin"}

// Where unauthenticated visitors of protected pages are sent.
const signInPage = "/login"

// Where already signed-in visitors of auth pages are sent.
const homePage = "/documents"

// AuthMiddleware provides the session-based guards. The session token is read
// from the session cookie or, for API clients, from a Bearer header.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.Session.CookieName,
	}
}

// session extracts and validates the session token carried by the request.
// Any failure, missing token included, means "no session".
func (m *AuthMiddleware) session(c echo.Context) (*service.SessionClaims, bool) {
	token := m.tokenFromRequest(c)
	if token == "" {
		return nil, false
	}

	claims, err := m.tokenSvc.Validate(token)
	if err != nil {
		return nil, false
	}

	return claims, true
}

func (m *AuthMiddleware) tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	return ""
}

// Authenticate rejects requests without a valid session before any handler
// work happens. Protected API routes use this guard.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := m.session(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
		}

		deliverycontext.SetSession(c, claims)

		return next(c)
	}
}

// RouteGuard applies the page access policy: auth pages redirect signed-in
// visitors to the content area, protected pages redirect anonymous visitors
// to the sign-in page. Pages outside both sets pass through untouched.
func (m *AuthMiddleware) RouteGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		claims, authenticated := m.session(c)

		if isAuthPage(path) {
			if authenticated {
				return c.Redirect(http.StatusTemporaryRedirect, homePage)
			}

			return next(c)
		}

		if isProtectedPage(path) {
			if !authenticated {
				return c.Redirect(http.StatusTemporaryRedirect, signInPage)
			}

			deliverycontext.SetSession(c, claims)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session's role claim.
// It must be used AFTER the Authenticate or RouteGuard middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetSession(c)
			if claims == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: session information missing")
			}

			if claims.Role != required {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(required)+"' role")
			}

			return next(c)
		}
	}
}

func isAuthPage(path string) bool {
	for _, page := range authPages {
		if path == page {
			return true
		}
	}

	return false
}

func isProtectedPage(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	return false
}
