package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prasdika/storefront/internal/errs"
	"github.com/prasdika/storefront/internal/server"
)

// RateLimitMiddleware enforces a fixed-window request limit per client IP
// using redis. The counter key carries the window so limits reset cleanly
// at window boundaries.
type RateLimitMiddleware struct {
	server *server.Server
}

// NewRateLimitMiddleware constructs a RateLimitMiddleware.
func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the enforcement middleware. It fails open: when redis is
// unreachable the request proceeds and the failure is logged, because
// availability beats a best-effort limiter.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg == nil || !cfg.Enabled {
				return next(c)
			}

			window := time.Duration(cfg.WindowSeconds) * time.Second
			windowStart := time.Now().Unix() / int64(cfg.WindowSeconds)
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), windowStart)

			ctx := c.Request().Context()

			count, err := r.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Error().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}

			if count == 1 {
				// First hit in this window owns the expiry.
				if err := r.server.Redis.Expire(ctx, key, window).Err(); err != nil {
					GetLogger(c).Error().Err(err).Msg("failed to set rate limit window expiry")
				}
			}

			if count > int64(cfg.Requests) {
				r.RecordRateLimitHit(c.Path())
				return errs.NewTooManyRequestsError("Too many requests, slow down")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit emits a New Relic custom event for a rejected
// request, so limiter pressure is visible in APM.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
