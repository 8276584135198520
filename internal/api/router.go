package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/purplemerit/account-service/docs"
	"github.com/purplemerit/account-service/internal/api/handler"
	"github.com/purplemerit/account-service/internal/api/middleware"
	"github.com/purplemerit/account-service/internal/core/service"
	"github.com/purplemerit/account-service/internal/infrastructure/config"
	mongorepo "github.com/purplemerit/account-service/internal/infrastructure/db/mongo"
	rediscache "github.com/purplemerit/account-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // the browser frontend lives on another origin
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	cache := rediscache.NewProfileCache(rdb, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, cache, cfg.BcryptCost, log)
	adminService := service.NewAdminService(userRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(userService)
	adminHandler := handler.NewAdminHandler(userService, adminService)

	authRequired := middleware.Auth(authService)
	adminOnly := middleware.RequireRoles("admin")

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/profile", profileHandler.Get, authRequired)
	e.PUT("/update-profile", profileHandler.Update, authRequired)
	e.PUT("/change-password", profileHandler.ChangePassword, authRequired)
	e.GET("/user/:id", adminHandler.GetUser, authRequired)

	// --- Admin routes ---
	e.GET("/users", adminHandler.ListUsers, authRequired, adminOnly)
	e.PUT("/user/:id/status", adminHandler.SetStatus, authRequired, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
