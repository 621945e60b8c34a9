package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/prasdika/storefront/internal/repository"
	"github.com/prasdika/storefront/internal/server"
	"github.com/prasdika/storefront/internal/validation"
)

// Listing defaults applied when the query string omits them.
const (
	defaultOffset = 0
	defaultLimit  = 25
)

// ProductService is the business surface the product handlers call.
// Declared here so tests can substitute a stub.
type ProductService interface {
	List(ctx context.Context, opts repository.ProductListOptions) ([]repository.Product, error)
	Get(ctx context.Context, id string) (*repository.Product, error)
	Create(ctx context.Context, input repository.ProductInput) (*repository.Product, error)
	Update(ctx context.Context, id string, input repository.ProductInput) (*repository.Product, error)
	Delete(ctx context.Context, id string) (repository.DeleteResult, error)
}

// ProductHandler serves the /products routes.
type ProductHandler struct {
	Handler
	products ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(s *server.Server, products ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

// ListProductsRequest is the query surface of GET /products. Offset and
// limit are pointers so an absent parameter is distinguishable from an
// explicit zero and can receive the default.
type ListProductsRequest struct {
	Offset *int   `query:"offset" validate:"omitempty,min=0"`
	Limit  *int   `query:"limit" validate:"omitempty,min=1"`
	Tag    string `query:"tag"`
}

func (r *ListProductsRequest) Validate() error {
	return validation.Struct(r)
}

// List handles GET /products.
func (h *ProductHandler) List(c echo.Context, req *ListProductsRequest) ([]repository.Product, error) {
	opts := repository.ProductListOptions{
		Offset: defaultOffset,
		Limit:  defaultLimit,
		Tag:    req.Tag,
	}
	if req.Offset != nil {
		opts.Offset = *req.Offset
	}
	if req.Limit != nil {
		opts.Limit = *req.Limit
	}

	return h.products.List(c.Request().Context(), opts)
}

// GetProductRequest identifies a single product by path parameter.
type GetProductRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetProductRequest) Validate() error {
	return validation.Struct(r)
}

// Get handles GET /products/:id. A missing row surfaces as a wrapped
// ErrNoRows from the repository, which the global error handler renders
// as 404.
func (h *ProductHandler) Get(c echo.Context, req *GetProductRequest) (*repository.Product, error) {
	return h.products.Get(c.Request().Context(), req.ID)
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"min=0"`
	Tags        []string `json:"tags"`
}

func (r *CreateProductRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c echo.Context, req *CreateProductRequest) (*repository.Product, error) {
	return h.products.Create(c.Request().Context(), repository.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tags:        req.Tags,
	})
}

// UpdateProductRequest combines the path id with the writable fields.
type UpdateProductRequest struct {
	ID          string   `param:"id" validate:"required,uuid"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"min=0"`
	Tags        []string `json:"tags"`
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(r)
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c echo.Context, req *UpdateProductRequest) (*repository.Product, error) {
	return h.products.Update(c.Request().Context(), req.ID, repository.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Tags:        req.Tags,
	})
}

// DeleteProductRequest identifies the product to remove.
type DeleteProductRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteProductRequest) Validate() error {
	return validation.Struct(r)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c echo.Context, req *DeleteProductRequest) (repository.DeleteResult, error) {
	return h.products.Delete(c.Request().Context(), req.ID)
}
