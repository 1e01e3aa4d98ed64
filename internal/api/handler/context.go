package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/crmapp/crm-backend/internal/api/middleware"
	"github.com/crmapp/crm-backend/internal/core/domain"
)

// actor extracts the identity claims injected by the Auth middleware. A
// missing claim means the middleware did not run on this route; fail closed.
func actor(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	role, _ = c.Get(middleware.ContextRole).(string)
	if userID == "" || role == "" {
		return "", "", domain.Unauthenticated("Missing authentication claims")
	}
	return userID, role, nil
}
