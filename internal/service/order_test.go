package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasdika/storefront/internal/lib/job"
	"github.com/prasdika/storefront/internal/repository"
)

type stubOrderRepo struct {
	createResult *repository.Order
	createErr    error
}

func (s *stubOrderRepo) List(context.Context, repository.OrderListOptions) ([]repository.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Get(context.Context, string) (*repository.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Create(_ context.Context, _ repository.OrderInput) (*repository.Order, error) {
	return s.createResult, s.createErr
}

func (s *stubOrderRepo) Update(context.Context, string, repository.OrderInput) (*repository.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Delete(context.Context, string) (repository.DeleteResult, error) {
	return repository.DeleteResult{}, nil
}

type stubProductRepo struct {
	getResult *repository.Product
	getErr    error
}

func (s *stubProductRepo) List(context.Context, repository.ProductListOptions) ([]repository.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Get(context.Context, string) (*repository.Product, error) {
	return s.getResult, s.getErr
}

func (s *stubProductRepo) Create(context.Context, repository.ProductInput) (*repository.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Update(context.Context, string, repository.ProductInput) (*repository.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Delete(context.Context, string) (repository.DeleteResult, error) {
	return repository.DeleteResult{}, nil
}

type stubEnqueuer struct {
	tasks      []*asynq.Task
	enqueueErr error
}

func (s *stubEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	s.tasks = append(s.tasks, task)
	return &asynq.TaskInfo{}, s.enqueueErr
}

func newOrderService(repo *stubOrderRepo, products *stubProductRepo, enq *stubEnqueuer) *OrderService {
	nop := zerolog.Nop()
	return &OrderService{
		repo:     repo,
		products: products,
		enqueuer: enq,
		logger:   &nop,
	}
}

func TestOrderCreateEnqueuesConfirmation(t *testing.T) {
	order := &repository.Order{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		Quantity:      2,
		Status:        "pending",
		CustomerEmail: "jo@example.com",
	}
	enq := &stubEnqueuer{}
	svc := newOrderService(
		&stubOrderRepo{createResult: order},
		&stubProductRepo{getResult: &repository.Product{Name: "Widget"}},
		enq,
	)

	got, err := svc.Create(context.Background(), repository.OrderInput{})

	require.NoError(t, err)
	assert.Equal(t, order, got)

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, job.TaskOrderConfirmation, enq.tasks[0].Type())

	var payload job.OrderConfirmationPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
	assert.Equal(t, "jo@example.com", payload.To)
	assert.Equal(t, order.ID.String(), payload.OrderID)
	assert.Equal(t, "Widget", payload.ProductName)
	assert.Equal(t, 2, payload.Quantity)
}

func TestOrderCreateWithoutEmailSkipsConfirmation(t *testing.T) {
	order := &repository.Order{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1}
	enq := &stubEnqueuer{}
	svc := newOrderService(&stubOrderRepo{createResult: order}, &stubProductRepo{}, enq)

	_, err := svc.Create(context.Background(), repository.OrderInput{})

	require.NoError(t, err)
	assert.Empty(t, enq.tasks)
}

func TestOrderCreateFallsBackWhenProductLookupFails(t *testing.T) {
	order := &repository.Order{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		Quantity:      1,
		CustomerEmail: "jo@example.com",
	}
	enq := &stubEnqueuer{}
	svc := newOrderService(
		&stubOrderRepo{createResult: order},
		&stubProductRepo{getErr: errors.New("down")},
		enq,
	)

	_, err := svc.Create(context.Background(), repository.OrderInput{})

	require.NoError(t, err)
	require.Len(t, enq.tasks, 1)

	var payload job.OrderConfirmationPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
	assert.Equal(t, "your item", payload.ProductName)
}

func TestOrderCreateFallsBackWhenProductAbsent(t *testing.T) {
	// The repository reports a missing row as (nil, nil); the enqueue must
	// not dereference it.
	order := &repository.Order{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		Quantity:      1,
		CustomerEmail: "jo@example.com",
	}
	enq := &stubEnqueuer{}
	svc := newOrderService(
		&stubOrderRepo{createResult: order},
		&stubProductRepo{getResult: nil, getErr: nil},
		enq,
	)

	got, err := svc.Create(context.Background(), repository.OrderInput{})

	require.NoError(t, err)
	assert.Equal(t, order, got)
	require.Len(t, enq.tasks, 1)

	var payload job.OrderConfirmationPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
	assert.Equal(t, "your item", payload.ProductName)
}

func TestOrderCreateEnqueueFailureDoesNotFailRequest(t *testing.T) {
	order := &repository.Order{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		Quantity:      1,
		CustomerEmail: "jo@example.com",
	}
	enq := &stubEnqueuer{enqueueErr: errors.New("queue unavailable")}
	svc := newOrderService(&stubOrderRepo{createResult: order}, &stubProductRepo{}, enq)

	got, err := svc.Create(context.Background(), repository.OrderInput{})

	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderCreateRepoErrorPropagates(t *testing.T) {
	repoErr := errors.New("insert failed")
	enq := &stubEnqueuer{}
	svc := newOrderService(&stubOrderRepo{createErr: repoErr}, &stubProductRepo{}, enq)

	_, err := svc.Create(context.Background(), repository.OrderInput{})

	require.ErrorIs(t, err, repoErr)
	assert.Empty(t, enq.tasks)
}
