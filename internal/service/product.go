package service

import (
	"context"

	"github.com/prasdika/storefront/internal/repository"
	"github.com/prasdika/storefront/internal/server"
)

// ProductRepository is the data access surface the product service needs.
// Declared here so tests can substitute a stub.
type ProductRepository interface {
	List(ctx context.Context, opts repository.ProductListOptions) ([]repository.Product, error)
	Get(ctx context.Context, id string) (*repository.Product, error)
	Create(ctx context.Context, input repository.ProductInput) (*repository.Product, error)
	Update(ctx context.Context, id string, input repository.ProductInput) (*repository.Product, error)
	Delete(ctx context.Context, id string) (repository.DeleteResult, error)
}

// ProductService exposes product operations to the handler layer.
type ProductService struct {
	repo ProductRepository
}

// NewProductService constructs a ProductService.
func NewProductService(s *server.Server, repo ProductRepository) *ProductService {
	_ = s // reserved for cross-cutting deps (caching, events)
	return &ProductService{repo: repo}
}

// List returns a page of products.
func (svc *ProductService) List(ctx context.Context, opts repository.ProductListOptions) ([]repository.Product, error) {
	return svc.repo.List(ctx, opts)
}

// Get returns a single product by id.
func (svc *ProductService) Get(ctx context.Context, id string) (*repository.Product, error) {
	return svc.repo.Get(ctx, id)
}

// Create stores a new product.
func (svc *ProductService) Create(ctx context.Context, input repository.ProductInput) (*repository.Product, error) {
	return svc.repo.Create(ctx, input)
}

// Update replaces a product's writable fields.
func (svc *ProductService) Update(ctx context.Context, id string, input repository.ProductInput) (*repository.Product, error) {
	return svc.repo.Update(ctx, id, input)
}

// Delete removes a product.
func (svc *ProductService) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	return svc.repo.Delete(ctx, id)
}
