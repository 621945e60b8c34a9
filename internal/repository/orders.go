package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasdika/storefront/internal/server"
)

// Order is a purchase of a product.
type Order struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ProductID     uuid.UUID `db:"product_id" json:"productId"`
	Quantity      int       `db:"quantity" json:"quantity"`
	Status        string    `db:"status" json:"status"`
	CustomerEmail string    `db:"customer_email" json:"customerEmail"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// OrderInput carries the writable fields of an order.
type OrderInput struct {
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	CustomerEmail string `json:"customerEmail"`
}

// OrderListOptions controls pagination and filtering of order lists.
type OrderListOptions struct {
	Offset int
	Limit  int

	// ProductID and Status, when non-empty, filter the result set.
	ProductID string
	Status    string
}

// OrdersRepository performs order table operations against the pool.
type OrdersRepository struct {
	pool *pgxpool.Pool
}

// NewOrdersRepository constructs an OrdersRepository.
func NewOrdersRepository(s *server.Server) *OrdersRepository {
	return &OrdersRepository{pool: s.DB.Pool}
}

const orderColumns = "id, product_id, quantity, status, customer_email, created_at, updated_at"

// List returns a page of orders ordered by creation time, newest first.
func (r *OrdersRepository) List(ctx context.Context, opts OrderListOptions) ([]Order, error) {
	query := "select " + orderColumns + " from orders"
	args := []any{}
	where := ""

	appendFilter := func(clause string, value any) {
		args = append(args, value)
		if where == "" {
			where = " where"
		} else {
			where += " and"
		}
		where += fmt.Sprintf(" %s = $%d", clause, len(args))
	}

	if opts.ProductID != "" {
		appendFilter("product_id", opts.ProductID)
	}
	if opts.Status != "" {
		appendFilter("status", opts.Status)
	}
	query += where

	args = append(args, opts.Limit)
	query += fmt.Sprintf(" order by created_at desc limit $%d", len(args))
	args = append(args, opts.Offset)
	query += fmt.Sprintf(" offset $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[Order])
	if err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// Get fetches a single order by id.
func (r *OrdersRepository) Get(ctx context.Context, id string) (*Order, error) {
	rows, err := r.pool.Query(ctx,
		"select "+orderColumns+" from orders where id = $1", id)
	if err != nil {
		return nil, err
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:orders: %w", err)
		}
		return nil, err
	}
	return &order, nil
}

// Create inserts a new order and returns the stored row. Status defaults
// to "pending" when the payload leaves it empty.
func (r *OrdersRepository) Create(ctx context.Context, input OrderInput) (*Order, error) {
	status := input.Status
	if status == "" {
		status = "pending"
	}

	rows, err := r.pool.Query(ctx,
		`insert into orders (id, product_id, quantity, status, customer_email)
		 values ($1, $2, $3, $4, $5)
		 returning `+orderColumns,
		uuid.New(), input.ProductID, input.Quantity, status, input.CustomerEmail)
	if err != nil {
		return nil, err
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Order])
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Update replaces the writable fields of an order and returns the updated
// row.
func (r *OrdersRepository) Update(ctx context.Context, id string, input OrderInput) (*Order, error) {
	rows, err := r.pool.Query(ctx,
		`update orders
		 set product_id = $2, quantity = $3, status = $4, customer_email = $5, updated_at = now()
		 where id = $1
		 returning `+orderColumns,
		id, input.ProductID, input.Quantity, input.Status, input.CustomerEmail)
	if err != nil {
		return nil, err
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:orders: %w", err)
		}
		return nil, err
	}
	return &order, nil
}

// Delete removes an order by id.
func (r *OrdersRepository) Delete(ctx context.Context, id string) (DeleteResult, error) {
	var deletedID uuid.UUID
	err := r.pool.QueryRow(ctx,
		"delete from orders where id = $1 returning id", id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DeleteResult{}, fmt.Errorf("table:orders: %w", err)
		}
		return DeleteResult{}, err
	}

	return DeleteResult{ID: deletedID.String(), Deleted: true}, nil
}
