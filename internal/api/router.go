package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopor/catalog-api/internal/api/handler"
	"github.com/shopor/catalog-api/internal/api/middleware"
	"github.com/shopor/catalog-api/internal/core/domain"
	"github.com/shopor/catalog-api/internal/core/ports"
	"github.com/shopor/catalog-api/internal/core/token"
)

// Deps carries everything the router needs, built once in main.
type Deps struct {
	Identity ports.IdentityService
	Items    ports.ItemService
	Tokens   *token.Service
	Limiter  middleware.Allower
	Mongo    *mongo.Database
	Redis    *redis.Client
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Authorization is composed in a fixed order on each route: authenticate,
// then role check; the ownership check lives in the item service where the
// stored record is available.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Identity)
	userHandler := handler.NewUserHandler(deps.Identity)
	itemHandler := handler.NewItemHandler(deps.Items)

	authMW := middleware.Auth(deps.Tokens)
	limitMW := middleware.RateLimit(deps.Limiter, deps.Log)

	// --- Credential routes (unauthenticated, throttled) ---
	e.POST("/register", authHandler.Register, limitMW)
	e.POST("/login", authHandler.Login, limitMW)

	// --- User routes ---
	e.GET("/users", userHandler.List, authMW, middleware.RBAC(domain.RoleAdmin))

	// --- Item routes ---
	e.POST("/items", itemHandler.Create, authMW, middleware.RBAC(domain.RoleAdmin, domain.RoleCreator))
	e.GET("/items", itemHandler.List, authMW)
	e.PUT("/items/:id", itemHandler.Update, authMW, middleware.RBAC(domain.RoleAdmin, domain.RoleCreator))
	e.DELETE("/items/:id", itemHandler.Delete, authMW, middleware.RBAC(domain.RoleAdmin, domain.RoleCreator))

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
