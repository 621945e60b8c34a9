package handler

import (
	"github.com/prasdika/storefront/internal/server"
	"github.com/prasdika/storefront/internal/service"
)

// Handlers is the container for all HTTP handlers.
type Handlers struct {
	Root     *RootHandler
	Health   *HealthHandler
	Products *ProductHandler
	Orders   *OrderHandler
}

// NewHandlers constructs the handler container from the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:     NewRootHandler(s),
		Health:   NewHealthHandler(s),
		Products: NewProductHandler(s, services.Products),
		Orders:   NewOrderHandler(s, services.Orders),
	}
}
