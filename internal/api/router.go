package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/userhub/identity-api/internal/api/handler"
	"github.com/userhub/identity-api/internal/api/middleware"
	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/service"
	"github.com/userhub/identity-api/internal/infrastructure/config"
	"github.com/userhub/identity-api/internal/infrastructure/db/postgres"
	"github.com/userhub/identity-api/internal/infrastructure/db/redis"
)

// Services groups the core services the router composes. Exposed so main can
// seed default roles through the same instances the routes use.
type Services struct {
	Roles *service.RoleService
	Users *service.UserService
	Auth  *service.AuthService
}

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the composed services.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *Services) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	attempts := redis.NewLoginLimiter(rdb)

	passwordService := service.NewPasswordService(cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	roleService := service.NewRoleService(roleRepo, log)
	userService := service.NewUserService(userRepo, roleService, passwordService, log)
	authService := service.NewAuthService(userRepo, passwordService, tokenService, attempts, log)

	authHandler := handler.NewAuthHandler(userService, authService)
	profileHandler := handler.NewProfileHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	adminHandler := handler.NewAdminHandler(userService, roleService)

	authMW := middleware.Auth(tokenService)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, authMW)

	// --- Profile routes ---
	profile := v1.Group("/profile", authMW)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)
	profile.PUT("/password", profileHandler.ChangePassword)

	// --- Public role catalog ---
	v1.GET("/roles", roleHandler.List)
	v1.GET("/roles/names", roleHandler.Names)
	v1.GET("/roles/:id", roleHandler.Get)

	// --- Admin routes ---
	admin := v1.Group("/admin", authMW, adminMW)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/users/country/:code", adminHandler.UsersByCountry)
	admin.POST("/roles", adminHandler.CreateRole)
	admin.PUT("/roles/:id", adminHandler.UpdateRole)
	admin.DELETE("/roles/:id", adminHandler.DeleteRole)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, &Services{Roles: roleService, Users: userService, Auth: authService}
}
