package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/photographyhub/course-platform/internal/api/handler"
	"github.com/photographyhub/course-platform/internal/api/middleware"
	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
	"github.com/photographyhub/course-platform/internal/core/service"
	"github.com/photographyhub/course-platform/internal/infrastructure/config"
	mongodb "github.com/photographyhub/course-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/photographyhub/course-platform/internal/infrastructure/db/redis"
	healthhandlers "github.com/photographyhub/course-platform/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher is constructed and started by the caller so its worker
// lifetime is tied to the process context, not the router.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditDispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("course_platform"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authService := service.NewAuthService(accountRepo, tokens, sessions, cfg.RefreshTokenTTL, log)
	courseService := service.NewCourseService(courseRepo, log)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)
	requestService := service.NewRequestService(requestRepo, courseRepo, log)

	authHandler := handler.NewAuthHandler(authService, audit)
	accountHandler := handler.NewAccountHandler(accountRepo)
	courseHandler := handler.NewCourseHandler(courseService, audit)
	productHandler := handler.NewProductHandler(productService, audit)
	cartHandler := handler.NewCartHandler(cartService)
	requestHandler := handler.NewRequestHandler(requestService, audit)

	authn := middleware.Auth(tokens)
	anyAuthenticated := middleware.RBAC()
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrInstructor := middleware.RBAC(domain.RoleAdmin, domain.RoleInstructor)
	instructorOnly := middleware.RBAC(domain.RoleInstructor)

	// --- Auth routes ---
	e.POST("/user/register", authHandler.Register)
	e.POST("/user/login", authHandler.Login)
	e.POST("/user/logout", authHandler.Logout)
	e.POST("/token/refresh", authHandler.Refresh)

	// --- Course catalog ---
	e.GET("/courses", courseHandler.List)
	e.POST("/courses", courseHandler.Create, authn, adminOrInstructor)
	e.DELETE("/courses/:id", courseHandler.Delete, authn, adminOnly)

	// --- Shop catalog ---
	e.GET("/shop/products", productHandler.List)
	e.GET("/shop", productHandler.List)
	e.POST("/shop/products", productHandler.Create, authn, adminOnly)
	e.DELETE("/shop/products/:id", productHandler.Delete, authn, adminOnly)

	// --- Cart (any authenticated account, always scoped to the caller) ---
	cart := e.Group("/cart", authn, anyAuthenticated)
	cart.GET("", cartHandler.List)
	cart.POST("", cartHandler.Add)
	cart.PUT("/:cartItemID", cartHandler.Update)
	cart.DELETE("/:cartItemID", cartHandler.Remove)

	// --- Instructor request workflow ---
	e.POST("/instructor/request-course", requestHandler.Submit, authn, instructorOnly)

	// --- Admin surface ---
	admin := e.Group("/admin", authn, adminOnly)
	admin.GET("/requests", requestHandler.ListPending)
	admin.POST("/requests/:id/action", requestHandler.Decide)
	admin.GET("/all-users", accountHandler.List)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
