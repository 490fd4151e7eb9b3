package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/config"
	deliverycontext "learnhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Process(func(c echo.Context) error {
		// The service layer pulls the request-scoped logger from the
		// request context, not the fallback passed alongside it.
		fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), fallback)
		require.NotSame(t, fallback, logger)
		logger.Info("inside handler")

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=")
	assert.Contains(t, buf.String(), "inside handler")
}

func TestRequestIDMiddleware_EchoesClientID(t *testing.T) {
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-supplied-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	handler := mw.Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-supplied-id", seenID)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_DebugLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/documents?page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "method=GET")
	assert.Contains(t, buf.String(), "/documents")
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Empty(t, buf.String())
}
