package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/prasdika/storefront/internal/server"
)

// RootHandler serves the static landing document.
type RootHandler struct {
	Handler
}

// NewRootHandler constructs a RootHandler.
func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{
		Handler: NewHandler(s),
	}
}

// Index handles GET /. The landing page is served with no-cache headers
// so deploys are picked up immediately.
func (h *RootHandler) Index(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	return c.File("static/index.html")
}
