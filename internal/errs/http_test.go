package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bad Request", "BAD_REQUEST"},
		{"Not Found", "NOT_FOUND"},
		{"Too Many Requests", "TOO_MANY_REQUESTS"},
		{"Internal Server Error", "INTERNAL_SERVER_ERROR"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MakeUpperCaseWithUnderscores(tt.in))
	}
}

func TestConstructors(t *testing.T) {
	t.Run("bad request defaults", func(t *testing.T) {
		err := NewBadRequestError("nope", false, nil, nil, nil)

		assert.Equal(t, http.StatusBadRequest, err.Status)
		assert.Equal(t, "BAD_REQUEST", err.Code)
		assert.Equal(t, "nope", err.Message)
		assert.False(t, err.Override)
		assert.Nil(t, err.Errors)
		assert.Nil(t, err.Action)
	})

	t.Run("bad request custom code and field errors", func(t *testing.T) {
		code := "PRODUCT_ALREADY_EXISTS"
		fields := []FieldError{{Field: "name", Error: "is required"}}

		err := NewBadRequestError("duplicate", true, &code, fields, nil)

		assert.Equal(t, "PRODUCT_ALREADY_EXISTS", err.Code)
		assert.True(t, err.Override)
		assert.Equal(t, fields, err.Errors)
	})

	t.Run("not found", func(t *testing.T) {
		err := NewNotFoundError("Product not found", true, nil)

		assert.Equal(t, http.StatusNotFound, err.Status)
		assert.Equal(t, "NOT_FOUND", err.Code)
		assert.True(t, err.Override)
	})

	t.Run("too many requests", func(t *testing.T) {
		err := NewTooManyRequestsError("slow down")

		assert.Equal(t, http.StatusTooManyRequests, err.Status)
		assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
	})

	t.Run("internal server error hides details", func(t *testing.T) {
		err := NewInternalServerError()

		assert.Equal(t, http.StatusInternalServerError, err.Status)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	})
}

func TestHTTPErrorIs(t *testing.T) {
	httpErr := NewNotFoundError("gone", false, nil)
	wrapped := fmt.Errorf("lookup failed: %w", httpErr)

	// Matches on type, regardless of status or code.
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var target *HTTPError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, http.StatusNotFound, target.Status)
}

func TestWithMessage(t *testing.T) {
	orig := NewBadRequestError("original", true, nil, []FieldError{{Field: "x", Error: "bad"}}, nil)
	copied := orig.WithMessage("replaced")

	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, orig.Code, copied.Code)
	assert.Equal(t, orig.Status, copied.Status)
	assert.Equal(t, orig.Errors, copied.Errors)
	// Original untouched.
	assert.Equal(t, "original", orig.Message)
}
