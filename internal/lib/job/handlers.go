package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/prasdika/storefront/internal/config"
	"github.com/prasdika/storefront/internal/lib/email"
)

// emailClient is shared by job handlers. InitHandlers must run before the
// worker server starts.
var emailClient *email.Client

// InitHandlers initializes the dependencies job handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(cfg, logger)
}

// handleOrderConfirmationTask sends the confirmation email for a newly
// created order. Returning an error makes asynq retry the task.
func (j *JobService) handleOrderConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p OrderConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal order confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "order_confirmation").
		Str("order_id", p.OrderID).
		Str("to", p.To).
		Msg("processing order confirmation task")

	if err := emailClient.SendOrderConfirmationEmail(p.To, p.OrderID, p.ProductName, p.Quantity); err != nil {
		j.logger.Error().
			Str("type", "order_confirmation").
			Str("order_id", p.OrderID).
			Str("to", p.To).
			Err(err).
			Msg("failed to send order confirmation email")
		return err
	}

	j.logger.Info().
		Str("type", "order_confirmation").
		Str("order_id", p.OrderID).
		Str("to", p.To).
		Msg("order confirmation email sent")

	return nil
}
