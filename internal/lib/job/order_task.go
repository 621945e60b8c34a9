package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation is the task type asynq routes to the order
	// confirmation handler.
	TaskOrderConfirmation = "order:confirmation"
)

// OrderConfirmationPayload is the serialized task data for an order
// confirmation email.
type OrderConfirmationPayload struct {
	To          string `json:"to"`
	OrderID     string `json:"order_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// NewOrderConfirmationTask builds the asynq task for an order confirmation
// email: up to 3 retries, default queue, 30 second handler timeout.
func NewOrderConfirmationTask(to, orderID, productName string, quantity int) (*asynq.Task, error) {
	payload, err := json.Marshal(OrderConfirmationPayload{
		To:          to,
		OrderID:     orderID,
		ProductName: productName,
		Quantity:    quantity,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskOrderConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
