package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/prasdika/storefront/internal/repository"
	"github.com/prasdika/storefront/internal/server"
	"github.com/prasdika/storefront/internal/validation"
)

// OrderService is the business surface the order handlers call.
type OrderService interface {
	List(ctx context.Context, opts repository.OrderListOptions) ([]repository.Order, error)
	Get(ctx context.Context, id string) (*repository.Order, error)
	Create(ctx context.Context, input repository.OrderInput) (*repository.Order, error)
	Update(ctx context.Context, id string, input repository.OrderInput) (*repository.Order, error)
	Delete(ctx context.Context, id string) (repository.DeleteResult, error)
}

// OrderHandler serves the /orders routes.
type OrderHandler struct {
	Handler
	orders OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(s *server.Server, orders OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

// ListOrdersRequest is the query surface of GET /orders.
type ListOrdersRequest struct {
	Offset    *int   `query:"offset" validate:"omitempty,min=0"`
	Limit     *int   `query:"limit" validate:"omitempty,min=1"`
	ProductID string `query:"productId" validate:"omitempty,uuid"`
	Status    string `query:"status"`
}

func (r *ListOrdersRequest) Validate() error {
	return validation.Struct(r)
}

// List handles GET /orders.
func (h *OrderHandler) List(c echo.Context, req *ListOrdersRequest) ([]repository.Order, error) {
	opts := repository.OrderListOptions{
		Offset:    defaultOffset,
		Limit:     defaultLimit,
		ProductID: req.ProductID,
		Status:    req.Status,
	}
	if req.Offset != nil {
		opts.Offset = *req.Offset
	}
	if req.Limit != nil {
		opts.Limit = *req.Limit
	}

	return h.orders.List(c.Request().Context(), opts)
}

// GetOrderRequest identifies a single order by path parameter.
type GetOrderRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetOrderRequest) Validate() error {
	return validation.Struct(r)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context, req *GetOrderRequest) (*repository.Order, error) {
	return h.orders.Get(c.Request().Context(), req.ID)
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ProductID     string `json:"productId" validate:"required,uuid"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	Status        string `json:"status" validate:"omitempty,oneof=pending paid shipped cancelled"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

func (r *CreateOrderRequest) Validate() error {
	return validation.Struct(r)
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c echo.Context, req *CreateOrderRequest) (*repository.Order, error) {
	return h.orders.Create(c.Request().Context(), repository.OrderInput{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Status:        req.Status,
		CustomerEmail: req.CustomerEmail,
	})
}

// UpdateOrderRequest combines the path id with the writable fields.
type UpdateOrderRequest struct {
	ID            string `param:"id" validate:"required,uuid"`
	ProductID     string `json:"productId" validate:"required,uuid"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	Status        string `json:"status" validate:"required,oneof=pending paid shipped cancelled"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

func (r *UpdateOrderRequest) Validate() error {
	return validation.Struct(r)
}

// Update handles PUT /orders/:id.
func (h *OrderHandler) Update(c echo.Context, req *UpdateOrderRequest) (*repository.Order, error) {
	return h.orders.Update(c.Request().Context(), req.ID, repository.OrderInput{
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		Status:        req.Status,
		CustomerEmail: req.CustomerEmail,
	})
}

// DeleteOrderRequest identifies the order to remove.
type DeleteOrderRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteOrderRequest) Validate() error {
	return validation.Struct(r)
}

// Delete handles DELETE /orders/:id.
func (h *OrderHandler) Delete(c echo.Context, req *DeleteOrderRequest) (repository.DeleteResult, error) {
	return h.orders.Delete(c.Request().Context(), req.ID)
}
