package repository

import (
	"github.com/prasdika/storefront/internal/server"
)

// Repositories is the container for all repository instances. It is built
// once at startup and handed to the service layer.
type Repositories struct {
	Products *ProductsRepository
	Orders   *OrdersRepository
}

// NewRepositories constructs the repository container from the shared
// application dependencies (connection pool, logger).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Products: NewProductsRepository(s),
		Orders:   NewOrdersRepository(s),
	}
}
