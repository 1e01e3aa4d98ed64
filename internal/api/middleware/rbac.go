package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/crmapp/crm-backend/internal/core/domain"
)

// RBAC is the coarse role gate: only the listed roles pass. It is applied
// per route so the allowed roles are visible next to the handler.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.Forbidden("Insufficient role")
			}
			return next(c)
		}
	}
}
