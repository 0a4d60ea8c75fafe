package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/futsal-booking/api/internal/auth"
	"github.com/octobees/futsal-booking/api/internal/config"
	"github.com/octobees/futsal-booking/api/internal/handler"
	middlewarepkg "github.com/octobees/futsal-booking/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	Listings *handler.ListingsHandler
	Search   *handler.SearchHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)
	e.GET("/services", handlers.Search.List)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/listings", handlers.Listings.Submit, middlewarepkg.SubmitRateLimiter(cfg.RateLimitSubmit))

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/listings", handlers.Search.ListAdmin)
}
