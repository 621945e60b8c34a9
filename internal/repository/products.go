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

// Product is a catalog entry.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Tags        []string  `db:"tags" json:"tags"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
}

// ProductListOptions controls pagination and filtering of product lists.
type ProductListOptions struct {
	Offset int
	Limit  int

	// Tag, when non-empty, restricts results to products carrying it.
	Tag string
}

// DeleteResult is the JSON body returned for delete operations.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ProductsRepository performs product table operations against the pool.
type ProductsRepository struct {
	pool *pgxpool.Pool
}

// NewProductsRepository constructs a ProductsRepository.
func NewProductsRepository(s *server.Server) *ProductsRepository {
	return &ProductsRepository{pool: s.DB.Pool}
}

const productColumns = "id, name, description, price, tags, created_at, updated_at"

// List returns a page of products ordered by creation time, newest first.
func (r *ProductsRepository) List(ctx context.Context, opts ProductListOptions) ([]Product, error) {
	query := "select " + productColumns + " from products"
	args := []any{}

	if opts.Tag != "" {
		args = append(args, opts.Tag)
		query += fmt.Sprintf(" where $%d = any(tags)", len(args))
	}

	args = append(args, opts.Limit)
	query += fmt.Sprintf(" order by created_at desc limit $%d", len(args))
	args = append(args, opts.Offset)
	query += fmt.Sprintf(" offset $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[Product])
	if err != nil {
		return nil, err
	}

	// An empty page is a valid result; keep it a JSON array, not null.
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Get fetches a single product by id.
func (r *ProductsRepository) Get(ctx context.Context, id string) (*Product, error) {
	rows, err := r.pool.Query(ctx,
		"select "+productColumns+" from products where id = $1", id)
	if err != nil {
		return nil, err
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:products: %w", err)
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product and returns the stored row.
func (r *ProductsRepository) Create(ctx context.Context, input ProductInput) (*Product, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	rows, err := r.pool.Query(ctx,
		`insert into products (id, name, description, price, tags)
		 values ($1, $2, $3, $4, $5)
		 returning `+productColumns,
		uuid.New(), input.Name, input.Description, input.Price, tags)
	if err != nil {
		return nil, err
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Product])
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces the writable fields of a product and returns the
// updated row.
func (r *ProductsRepository) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	rows, err := r.pool.Query(ctx,
		`update products
		 set name = $2, description = $3, price = $4, tags = $5, updated_at = now()
		 where id = $1
		 returning `+productColumns,
		id, input.Name, input.Description, input.Price, tags)
	if err != nil {
		return nil, err
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:products: %w", err)
		}
		return nil, err
	}
	return &product, nil
}

// Delete removes a product by id.
func (r *ProductsRepository) Delete(ctx context.Context, id string) (DeleteResult, error) {
	var deletedID uuid.UUID
	err := r.pool.QueryRow(ctx,
		"delete from products where id = $1 returning id", id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DeleteResult{}, fmt.Errorf("table:products: %w", err)
		}
		return DeleteResult{}, err
	}

	return DeleteResult{ID: deletedID.String(), Deleted: true}, nil
}
