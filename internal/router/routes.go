package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prasdika/storefront/internal/handler"
)

func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", h.Root.Index)
	e.GET("/status", h.Health.Status)
	e.Static("/static", "static")
}

func registerProductRoutes(e *echo.Echo, h *handler.Handlers) {
	g := e.Group("/products")

	g.GET("", handler.Handle(h.Products.Handler, h.Products.List, http.StatusOK))
	g.POST("", handler.Handle(h.Products.Handler, h.Products.Create, http.StatusCreated))
	g.GET("/:id", handler.Handle(h.Products.Handler, h.Products.Get, http.StatusOK))
	g.PUT("/:id", handler.Handle(h.Products.Handler, h.Products.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Products.Handler, h.Products.Delete, http.StatusOK))
}

func registerOrderRoutes(e *echo.Echo, h *handler.Handlers) {
	g := e.Group("/orders")

	g.GET("", handler.Handle(h.Orders.Handler, h.Orders.List, http.StatusOK))
	g.POST("", handler.Handle(h.Orders.Handler, h.Orders.Create, http.StatusCreated))
	g.GET("/:id", handler.Handle(h.Orders.Handler, h.Orders.Get, http.StatusOK))
	g.PUT("/:id", handler.Handle(h.Orders.Handler, h.Orders.Update, http.StatusOK))
	g.DELETE("/:id", handler.Handle(h.Orders.Handler, h.Orders.Delete, http.StatusOK))
}
