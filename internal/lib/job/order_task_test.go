package job

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderConfirmationTask(t *testing.T) {
	task, err := NewOrderConfirmationTask("jo@example.com", "order-1", "Widget", 2)
	require.NoError(t, err)

	assert.Equal(t, TaskOrderConfirmation, task.Type())

	var payload OrderConfirmationPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "jo@example.com", payload.To)
	assert.Equal(t, "order-1", payload.OrderID)
	assert.Equal(t, "Widget", payload.ProductName)
	assert.Equal(t, 2, payload.Quantity)
}
