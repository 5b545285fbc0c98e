package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/core/ports"
)

// Context keys populated by Auth for downstream handlers.
const (
	CtxEmail  = "email"
	CtxUserID = "user_id"
	CtxRoles  = "roles"
)

// Auth validates the bearer token and injects the caller's identity into the
// request context.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxEmail, claims.Email)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRoles, claims.Roles)

			return next(c)
		}
	}
}

// SubjectEmail extracts the authenticated subject injected by Auth.
// Presence proves the middleware ran; an empty value means the route was
// wired without it.
func SubjectEmail(c echo.Context) (string, error) {
	email, _ := c.Get(CtxEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
