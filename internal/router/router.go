// Package router builds the echo engine: global middleware, the error
// handler, and the route table.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/prasdika/storefront/internal/handler"
	"github.com/prasdika/storefront/internal/middleware"
	"github.com/prasdika/storefront/internal/repository"
	"github.com/prasdika/storefront/internal/server"
	"github.com/prasdika/storefront/internal/service"
)

// Setup wires the full HTTP surface: repositories, services, handlers,
// middleware chain and routes. The returned echo instance is handed to
// the net/http server by the caller.
//
// Middleware order matters:
//
//	Recover > Secure > CORS > RequestID > NewRelic > EnhanceTracing >
//	EnhanceContext > RequestLogger > RateLimit
//
// RequestID must precede the tracing and context enhancers so the
// correlation ID reaches both; the request logger runs after the context
// enhancer so it logs with the request-scoped logger.
func Setup(s *server.Server) (*echo.Echo, error) {
	repos := repository.NewRepositories(s)

	services, err := service.NewService(s, repos)
	if err != nil {
		return nil, err
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Every handler error funnels through this single handler.
	e.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	e.Use(middlewares.Global.Recover())
	e.Use(middlewares.Global.Secure())
	e.Use(middlewares.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(middlewares.Tracing.NewRelicMiddleware())
	e.Use(middlewares.Tracing.EnhanceTracing())
	e.Use(middlewares.ContextEnhancer.EnhanceContext())
	e.Use(middlewares.Global.RequestLogger())
	e.Use(middlewares.RateLimit.Limit())

	registerSystemRoutes(e, handlers)
	registerProductRoutes(e, handlers)
	registerOrderRoutes(e, handlers)

	return e, nil
}
