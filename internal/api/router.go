package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pressroom/publishing-system/docs"
	"github.com/pressroom/publishing-system/internal/api/handler"
	"github.com/pressroom/publishing-system/internal/api/middleware"
	"github.com/pressroom/publishing-system/internal/core/domain"
	"github.com/pressroom/publishing-system/internal/core/service"
	mongostore "github.com/pressroom/publishing-system/internal/infrastructure/db/mongo"
	redisstore "github.com/pressroom/publishing-system/internal/infrastructure/db/redis"
	"github.com/pressroom/publishing-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher *queue.Dispatcher, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("publishing"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	articleRepo := mongostore.NewArticleRepository(db)
	feedCache := redisstore.NewFeedCache(rdb)
	denylist := redisstore.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, denylist, jwtSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, log)
	articleService := service.NewArticleService(articleRepo, userRepo, feedCache, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	articleHandler := handler.NewArticleHandler(articleService)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	// The RBAC middleware is a coarse first gate; the service layer
	// re-checks every operation against the full rule table, including
	// ownership, so route guards only reject what no rule could allow.
	v1 := e.Group("/v1", middleware.Auth(jwtSecret, denylist))

	v1.POST("/logout", authHandler.Logout)

	v1.GET("/articles", articleHandler.List)
	v1.GET("/articles/mine", articleHandler.Mine)
	v1.GET("/articles/:id", articleHandler.Get)
	v1.POST("/articles", articleHandler.Create, middleware.RBAC(domain.RoleAuthor))
	v1.PUT("/articles/:id", articleHandler.Update)
	v1.DELETE("/articles/:id", articleHandler.Delete, middleware.RBAC(domain.RoleAdmin))
	v1.PATCH("/articles/:id/publish", articleHandler.Publish, middleware.RBAC(domain.RoleEditor, domain.RoleAdmin))

	v1.GET("/profile", userHandler.Profile)
	v1.GET("/users", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	v1.POST("/users/:id/role", userHandler.AssignRole, middleware.RBAC(domain.RoleAdmin))

	return e
}
