package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contentory/publishing-api/internal/api/handler"
	"github.com/contentory/publishing-api/internal/api/middleware"
	"github.com/contentory/publishing-api/internal/core/service"
	"github.com/contentory/publishing-api/internal/core/token"
	mongodb "github.com/contentory/publishing-api/internal/infrastructure/db/mongo"
	healthhandlers "github.com/contentory/publishing-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, tokens *token.Service, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	postService := service.NewPostService(postRepo, categoryRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	authRequired := middleware.Auth(tokens, userRepo)
	adminOnly := middleware.RequireAdmin()

	// --- User routes ---
	user := e.Group("/user")
	user.POST("/sign-up", authHandler.SignUp)
	user.POST("/token", authHandler.Login)
	user.PATCH("/admin_role", userHandler.Promote, authRequired)
	user.DELETE("/admin_role", userHandler.Demote, authRequired)

	// --- Post routes ---
	post := e.Group("/post", authRequired)
	post.POST("/create_post", postHandler.Create)
	post.DELETE("/:id", postHandler.Delete)
	post.GET("/all_posts", postHandler.List)
	post.POST("/create_category", categoryHandler.Create, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
