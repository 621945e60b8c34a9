package service

import (
	"github.com/prasdika/storefront/internal/repository"
	"github.com/prasdika/storefront/internal/server"
)

// Services is the container for all business services.
type Services struct {
	Products *ProductService
	Orders   *OrderService
}

// NewService constructs the service container.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Products: NewProductService(s, repos.Products),
		Orders:   NewOrderService(s, repos.Orders, repos.Products),
	}, nil
}
