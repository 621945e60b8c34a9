package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/prasdika/storefront/internal/lib/job"
	"github.com/prasdika/storefront/internal/repository"
	"github.com/prasdika/storefront/internal/server"
)

// OrderRepository is the data access surface the order service needs.
type OrderRepository interface {
	List(ctx context.Context, opts repository.OrderListOptions) ([]repository.Order, error)
	Get(ctx context.Context, id string) (*repository.Order, error)
	Create(ctx context.Context, input repository.OrderInput) (*repository.Order, error)
	Update(ctx context.Context, id string, input repository.OrderInput) (*repository.Order, error)
	Delete(ctx context.Context, id string) (repository.DeleteResult, error)
}

// TaskEnqueuer pushes background tasks onto the queue. Satisfied by
// *asynq.Client; declared here so tests can record enqueued tasks.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// OrderService exposes order operations to the handler layer.
type OrderService struct {
	repo     OrderRepository
	products ProductRepository
	enqueuer TaskEnqueuer
	logger   *zerolog.Logger
}

// NewOrderService constructs an OrderService.
func NewOrderService(s *server.Server, repo OrderRepository, products ProductRepository) *OrderService {
	return &OrderService{
		repo:     repo,
		products: products,
		enqueuer: s.Job.Client,
		logger:   s.Logger,
	}
}

// List returns a page of orders.
func (svc *OrderService) List(ctx context.Context, opts repository.OrderListOptions) ([]repository.Order, error) {
	return svc.repo.List(ctx, opts)
}

// Get returns a single order by id.
func (svc *OrderService) Get(ctx context.Context, id string) (*repository.Order, error) {
	return svc.repo.Get(ctx, id)
}

// Create stores a new order and, when the payload includes a customer
// email, enqueues the confirmation email task. Enqueue failures are logged
// but do not fail the request: the order is already committed.
func (svc *OrderService) Create(ctx context.Context, input repository.OrderInput) (*repository.Order, error) {
	order, err := svc.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if order.CustomerEmail != "" {
		svc.enqueueConfirmation(ctx, order)
	}

	return order, nil
}

// Update replaces an order's writable fields.
func (svc *OrderService) Update(ctx context.Context, id string, input repository.OrderInput) (*repository.Order, error) {
	return svc.repo.Update(ctx, id, input)
}

// Delete removes an order.
func (svc *OrderService) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	return svc.repo.Delete(ctx, id)
}

func (svc *OrderService) enqueueConfirmation(ctx context.Context, order *repository.Order) {
	// The product name makes the email readable; fall back to a generic
	// label rather than failing the enqueue over it. The lookup may report
	// an absent row as (nil, nil).
	productName := "your item"
	if product, err := svc.products.Get(ctx, order.ProductID.String()); err == nil && product != nil {
		productName = product.Name
	}

	task, err := job.NewOrderConfirmationTask(order.CustomerEmail, order.ID.String(), productName, order.Quantity)
	if err != nil {
		svc.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to build order confirmation task")
		return
	}

	if _, err := svc.enqueuer.Enqueue(task); err != nil {
		svc.logger.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to enqueue order confirmation task")
		return
	}

	svc.logger.Info().
		Str("order_id", order.ID.String()).
		Msg("order confirmation task enqueued")
}
