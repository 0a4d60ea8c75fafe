package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/octobees/futsal-booking/api/internal/config"
)

// SubmitRateLimiter applies a token bucket limiter for the listing submission
// endpoint. Submissions carry media uploads and a multi-row insert, so they
// are throttled harder than the read endpoints.
func SubmitRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limiter := rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
	var mu sync.Mutex

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() != "/listings" {
				return next(c)
			}

			mu.Lock()
			allowed := limiter.Allow()
			mu.Unlock()

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"success": false,
					"error":   "submission rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}
