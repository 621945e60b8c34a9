package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasdika/storefront/internal/errs"
)

func decodeHTTPError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var httpErr errs.HTTPError
	dec := json.NewDecoder(rec.Body)
	require.NoError(t, dec.Decode(&httpErr))
	// The funnel must write exactly one response document.
	require.False(t, dec.More())
	return httpErr
}

func newErrorTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(nil).GlobalErrorHandler
	return e
}

func TestGlobalErrorHandlerHTTPErrorPassthrough(t *testing.T) {
	e := newErrorTestServer()
	e.GET("/boom", func(c echo.Context) error {
		code := "PRODUCT_ALREADY_EXISTS"
		return errs.NewBadRequestError("A Product with this Name already exists", true, &code,
			[]errs.FieldError{{Field: "name", Error: "already taken"}}, nil)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	httpErr := decodeHTTPError(t, rec)
	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", httpErr.Code)
	assert.True(t, httpErr.Override)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestGlobalErrorHandlerUnmatchedRoute(t *testing.T) {
	e := newErrorTestServer()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	httpErr := decodeHTTPError(t, rec)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Route not found", httpErr.Message)
}

func TestGlobalErrorHandlerUnknownErrorIsSanitized(t *testing.T) {
	e := newErrorTestServer()
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("pq: something internal exploded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	httpErr := decodeHTTPError(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
	assert.NotContains(t, rec.Body.String(), "exploded")
}

func TestGlobalErrorHandlerEchoErrorShape(t *testing.T) {
	e := newErrorTestServer()
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	httpErr := decodeHTTPError(t, rec)
	assert.Equal(t, "METHOD_NOT_ALLOWED", httpErr.Code)
	assert.Equal(t, "nope", httpErr.Message)
}

func TestGlobalErrorHandlerDoesNotWriteTwice(t *testing.T) {
	e := newErrorTestServer()
	e.GET("/late", func(c echo.Context) error {
		// The handler already committed a response before failing.
		if err := c.String(http.StatusOK, "partial"); err != nil {
			return err
		}
		return errors.New("failed after write")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/late", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
