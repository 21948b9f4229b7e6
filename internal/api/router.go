package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/legalsuccessindia/portfolio-backend/internal/api/handler"
	"github.com/legalsuccessindia/portfolio-backend/internal/api/middleware"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/service"
	"github.com/legalsuccessindia/portfolio-backend/internal/infrastructure/config"
	"github.com/legalsuccessindia/portfolio-backend/internal/infrastructure/db/mysql"
	redisdb "github.com/legalsuccessindia/portfolio-backend/internal/infrastructure/db/redis"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case login rate limiting is disabled.
func NewRouter(db *gorm.DB, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portfolio"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// --- Dependencies ---
	submissionRepo := mysql.NewSubmissionRepository(db)
	adminRepo := mysql.NewAdminRepository(db)

	contactService := service.NewContactService(submissionRepo, log)
	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, tokenTTL, log)

	contactHandler := handler.NewContactHandler(contactService)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(contactService)

	var limiter middleware.AttemptLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb)
	}

	// --- Public routes ---
	e.POST("/api/submit-contact", contactHandler.Submit)
	e.POST("/api/admin/login", authHandler.Login, middleware.LoginRateLimit(limiter, log))

	// --- Admin routes (token gated) ---
	admin := e.Group("/api/admin", middleware.AdminAuth(authService))
	admin.GET("/submissions", adminHandler.List)
	admin.GET("/submissions/:id", adminHandler.Get)
	admin.DELETE("/submissions/:id", adminHandler.Delete)
	admin.PATCH("/submissions/:id/mark-read", adminHandler.MarkRead)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/profile", authHandler.Profile)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	docsHandler := handler.NewDocsHandler()

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api/docs", docsHandler.Docs)

	return e
}
