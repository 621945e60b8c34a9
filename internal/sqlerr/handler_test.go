package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasdika/storefront/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr
}

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlState string
		want     Code
	}{
		{"23503", ForeignKeyViolation},
		{"23505", UniqueViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"22P02", InvalidTextRepresentation},
		{"40001", Other},
		{"", Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCode(tt.sqlState), "sqlstate %q", tt.sqlState)
	}
}

func TestHandleErrorPassesThroughHTTPErrors(t *testing.T) {
	original := errs.NewNotFoundError("Product not found", true, nil)

	got := HandleError(original)

	assert.Same(t, error(original), got)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "products",
		ConstraintName: "unique_products_name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PRODUCT_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A Product with this Name already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "orders",
		ColumnName: "product_id",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ORDER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Product does not exist", httpErr.Message)
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "orders",
		ColumnName: "customer_email",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ORDER_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Customer Email is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "customer_email", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23514",
		Severity:   "ERROR",
		TableName:  "orders",
		ColumnName: "quantity",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "ORDER_INVALID", httpErr.Code)
	assert.Equal(t, "The Quantity value does not meet required conditions", httpErr.Message)
}

func TestHandleErrorUnknownPgErrorIsInternal(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "40001", Severity: "ERROR"}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleErrorNoRows(t *testing.T) {
	t.Run("annotated with table name", func(t *testing.T) {
		err := fmt.Errorf("table:products: %w", pgx.ErrNoRows)

		httpErr := asHTTPError(t, HandleError(err))

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Product not found", httpErr.Message)
		assert.True(t, httpErr.Override)
	})

	t.Run("annotated orders lookup", func(t *testing.T) {
		err := fmt.Errorf("table:orders: %w", pgx.ErrNoRows)

		httpErr := asHTTPError(t, HandleError(err))

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Order not found", httpErr.Message)
	})

	t.Run("bare ErrNoRows", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "Resource not found", httpErr.Message)
		assert.False(t, httpErr.Override)
	})
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})

	assert.Equal(t, UniqueViolation, ErrCode(converted))
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestConvertPgErrorUnwrap(t *testing.T) {
	src := &pgconn.PgError{Code: "23503", Severity: "ERROR", TableName: "orders"}
	converted := ConvertPgError(src)

	assert.Equal(t, ForeignKeyViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)

	var target *pgconn.PgError
	require.ErrorAs(t, converted, &target)
	assert.Same(t, src, target)
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"unique_products_name", "name"},
		{"products_name_key", "name"},
		{"orders_customer_email_key", "email"},
		{"pk_products", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractColumnForUniqueViolation(tt.constraint), "constraint %q", tt.constraint)
	}
}
