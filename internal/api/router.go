package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/roomdesk/booking-api/docs"
	"github.com/roomdesk/booking-api/internal/api/handler"
	"github.com/roomdesk/booking-api/internal/api/middleware"
	"github.com/roomdesk/booking-api/internal/core/domain"
	"github.com/roomdesk/booking-api/internal/core/ports"
	"github.com/roomdesk/booking-api/internal/core/service"
	"github.com/roomdesk/booking-api/internal/infrastructure/config"
	mongodb "github.com/roomdesk/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/roomdesk/booking-api/internal/infrastructure/db/redis"
)

// Deps carries the infrastructure the router wires handlers onto.
type Deps struct {
	Config    *config.Config
	DB        *mongo.Database
	Redis     *redis.Client
	Users     *mongodb.UserRepository
	Rooms     *mongodb.RoomRepository
	RoomTypes *mongodb.RoomTypeRepository
	Audit     ports.AuditRecorder
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Services ---
	cfg := deps.Config
	tokenService := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	throttle := redisdb.NewLoginThrottle(deps.Redis, cfg.Auth.MaxLoginFailures, cfg.Auth.LoginLockWindow)
	authService := service.NewAuthService(deps.Users, tokenService, throttle, deps.Audit, deps.Logger)
	roomService := service.NewRoomService(deps.Rooms, deps.RoomTypes, deps.Audit, deps.Logger)
	roomTypeService := service.NewRoomTypeService(deps.RoomTypes, deps.Rooms, deps.Audit, deps.Logger)
	userService := service.NewUserService(deps.Users, deps.Audit, deps.Logger)

	// --- Middleware chain ---
	// Stateless deployments trust the embedded claims and skip the per-request
	// credential store lookup.
	var refetch ports.UserRepository
	if !cfg.Auth.TrustClaims {
		refetch = deps.Users
	}
	authRequired := middleware.Auth(tokenService, refetch)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	roomTypeHandler := handler.NewRoomTypeHandler(roomTypeService)
	userHandler := handler.NewUserHandler(userService)

	v1 := e.Group("/api/v1")

	// Auth
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// Rooms: reads are public, mutations are admin-only.
	v1.GET("/rooms", roomHandler.List)
	v1.GET("/rooms/:id", roomHandler.Get)
	v1.POST("/rooms", roomHandler.Create, authRequired, adminOnly)
	v1.PUT("/rooms/:id", roomHandler.Update, authRequired, adminOnly)
	v1.DELETE("/rooms/:id", roomHandler.Delete, authRequired, adminOnly)

	// Room types: same gating as rooms.
	v1.GET("/room-types", roomTypeHandler.List)
	v1.GET("/room-types/:id", roomTypeHandler.Get)
	v1.POST("/room-types", roomTypeHandler.Create, authRequired, adminOnly)
	v1.PUT("/room-types/:id", roomTypeHandler.Update, authRequired, adminOnly)
	v1.DELETE("/room-types/:id", roomTypeHandler.Delete, authRequired, adminOnly)

	// User administration is admin-only end to end.
	users := v1.Group("/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id/role", userHandler.ChangeRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
