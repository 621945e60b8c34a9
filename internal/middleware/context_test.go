package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasdika/storefront/internal/server"
)

func TestEnhanceContextAttachesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	rootLogger := zerolog.New(&buf)

	s := &server.Server{Logger: &rootLogger}

	e := echo.New()
	e.Use(RequestID())
	e.Use(NewContextEnhancer(s).EnhanceContext())

	var ctxFromRequest context.Context
	e.GET("/products/:id", func(c echo.Context) error {
		GetLogger(c).Info().Msg("from handler")
		ctxFromRequest = c.Request().Context()
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/123", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, http.MethodGet, line["method"])
	// The route template is logged, not the raw URL.
	assert.Equal(t, "/products/:id", line["path"])
	assert.Equal(t, "from handler", line["message"])

	// Deeper layers that only see a context.Context get the same logger.
	buf.Reset()
	LoggerFromContext(ctxFromRequest).Info().Msg("from repository")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line["request_id"])
}

func TestLoggerFallbacksAreNoops(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	// Neither fallback may panic or write.
	GetLogger(c).Info().Msg("dropped")
	LoggerFromContext(context.Background()).Info().Msg("dropped")

	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}
