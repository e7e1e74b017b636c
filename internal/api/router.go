package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/oceanlk/admin-api/docs"
	"github.com/oceanlk/admin-api/internal/api/handler"
	"github.com/oceanlk/admin-api/internal/core/ports"
	"github.com/oceanlk/admin-api/internal/core/service"
	mongodb "github.com/oceanlk/admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/oceanlk/admin-api/internal/infrastructure/db/redis"
	"github.com/oceanlk/admin-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit recorder is injected by the caller so the background writer's
// lifecycle stays in main.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("oceanlk"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, audit, log)
	notificationService := service.NewNotificationService(notificationRepo, redisdb.NewUnreadCache(rdb), log)
	auditService := service.NewAuditService(auditRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	auditHandler := handler.NewAuditHandler(auditService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)

	// --- Admin routes ---
	admin := e.Group("/admin")
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/notifications", notificationHandler.ListUnread)
	admin.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	admin.POST("/notifications", notificationHandler.Create)
	admin.PATCH("/notifications/:id/mark-read", notificationHandler.MarkRead)

	admin.GET("/audit-logs", auditHandler.Recent)

	// --- Health probes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
