package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/token"
)

// Context keys under which the auth middleware stores the verified claims.
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Auth validates the bearer token and injects the identity claims into the
// request context. Failures render through the central error handler.
func Auth(verifier token.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.Unauthenticated("Missing or invalid authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.Unauthenticated("Missing or invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return err
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
