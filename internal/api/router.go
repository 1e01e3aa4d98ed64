package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/crmapp/crm-backend/internal/api/handler"
	"github.com/crmapp/crm-backend/internal/api/middleware"
	"github.com/crmapp/crm-backend/internal/core/domain"
	"github.com/crmapp/crm-backend/internal/core/service"
	"github.com/crmapp/crm-backend/internal/core/token"
	"github.com/crmapp/crm-backend/internal/infrastructure/config"
	"github.com/crmapp/crm-backend/internal/infrastructure/db/postgres"
)

// NewRouter builds the Echo instance with all routes registered. Every
// dependency is constructed here and injected explicitly; nothing is shared
// through package-level state.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, issuer, log))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, log))
	customerHandler := handler.NewCustomerHandler(service.NewCustomerService(customerRepo, log))
	taskHandler := handler.NewTaskHandler(service.NewTaskService(taskRepo, userRepo, customerRepo, log))

	auth := middleware.Auth(issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes (admin only) ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.PATCH("/:id", userHandler.UpdateRole, adminOnly)

	// --- Customer routes ---
	customers := e.Group("/customers", auth)
	customers.POST("", customerHandler.Create, adminOnly)
	customers.GET("", customerHandler.List, anyRole)
	customers.GET("/:id", customerHandler.Get, anyRole)
	customers.PATCH("/:id", customerHandler.Update, adminOnly)
	customers.DELETE("/:id", customerHandler.Delete, adminOnly)

	// --- Task routes ---
	tasks := e.Group("/tasks", auth)
	tasks.POST("", taskHandler.Create, adminOnly)
	tasks.GET("", taskHandler.List, anyRole)
	tasks.PATCH("/:id/status", taskHandler.UpdateStatus, anyRole)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db).Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
