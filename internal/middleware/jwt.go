package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	authpkg "github.com/octobees/futsal-booking/api/internal/auth"
)

// JWT validates bearer tokens and stores user metadata in the request context.
// Rejections use the submission failure envelope so form clients can read one
// shape for every error.
func JWT(manager *authpkg.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, "invalid authorization header")
			}

			claims, err := manager.ParseToken(parts[1])
			if err != nil {
				return unauthorized(c, "invalid token")
			}

			c.Set(ContextKeyUserID, claims.Subject)
			c.Set(ContextKeyUserEmail, claims.Email)
			c.Set(ContextKeyUserRole, claims.Role)

			return next(c)
		}
	}
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   message,
	})
}
