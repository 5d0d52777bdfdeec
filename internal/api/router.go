package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cartowiki/webapp/docs"
	"github.com/cartowiki/webapp/internal/api/handler"
	"github.com/cartowiki/webapp/internal/api/middleware"
	"github.com/cartowiki/webapp/internal/core/domain"
	"github.com/cartowiki/webapp/internal/core/service"
	"github.com/cartowiki/webapp/internal/infrastructure/config"
	mongodb "github.com/cartowiki/webapp/internal/infrastructure/db/mongo"
	redisdb "github.com/cartowiki/webapp/internal/infrastructure/db/redis"
	"github.com/cartowiki/webapp/internal/infrastructure/geoserver"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(echoprometheus.NewMiddleware("cartowiki"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, service.AuthLimits{
		UsernameMaxLength: cfg.Limits.UsernameMaxLength,
		EmailMaxLength:    cfg.Limits.EmailMaxLength,
	}, log)
	userService := service.NewUserService(userRepo, log)

	geoClient := geoserver.NewClient(cfg.GeoServer.URL, cfg.GeoServer.Workspace, nil)
	geoCache := redisdb.NewGeoCache(rdb, cfg.GeoServer.CacheTTL)
	geoService := service.NewGeoService(geoClient, geoCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	geoHandler := handler.NewGeoHandler(geoService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, authService)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- User management (privilege checks inside the service) ---
	users := e.Group("/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Edit)
	users.DELETE("/:id", userHandler.Delete,
		middleware.RBAC(domain.RoleContributor, domain.RoleAdministrator, domain.RoleSuperadministrator))

	// --- GeoServer proxy ---
	geo := e.Group("/api", authMiddleware)
	geo.GET("/geojson", geoHandler.Cities)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
