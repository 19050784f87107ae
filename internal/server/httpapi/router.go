// Package httpapi exposes the /users REST resource consumed by the
// RetailHub client: a development stand-in for the external user-storage
// service, with the same query-filtered collection semantics.
package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dmitrijs2005/retailhub/internal/logging"
	"github.com/dmitrijs2005/retailhub/internal/server/repositories/users"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(repo users.Repository, log logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	e.Validator = NewCustomValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	h := NewUsersHandler(repo)

	e.GET("/users", h.List)
	e.GET("/users/:id", h.GetByID)
	e.POST("/users", h.Create)
	e.PATCH("/users/:id", h.Patch)
	e.DELETE("/users/:id", h.Delete)

	// liveness probe, no auth required
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}
