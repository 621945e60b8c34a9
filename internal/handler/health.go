package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prasdika/storefront/internal/server"
)

// healthCheckTimeout bounds each dependency probe so a hung dependency
// cannot stall the status endpoint.
const healthCheckTimeout = 2 * time.Second

// HealthHandler reports service and dependency status.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status       string            `json:"status"`
	Environment  string            `json:"environment"`
	Dependencies map[string]string `json:"dependencies"`
}

// Status handles GET /status. It probes the database and redis; the
// overall status degrades when any dependency is down but the endpoint
// itself always answers 200 so orchestrators can read the detail.
func (h *HealthHandler) Status(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	deps := map[string]string{
		"database": "ok",
		"redis":    "ok",
	}
	status := "ok"

	if err := h.server.DB.Pool.Ping(ctx); err != nil {
		deps["database"] = "unreachable"
		status = "degraded"
	}

	if err := h.server.Redis.Ping(ctx).Err(); err != nil {
		deps["redis"] = "unreachable"
		status = "degraded"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:       status,
		Environment:  h.server.Config.Primary.Env,
		Dependencies: deps,
	})
}
