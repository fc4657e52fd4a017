package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litogalan/portfolio-cms/internal/api/handler"
	"github.com/litogalan/portfolio-cms/internal/api/middleware"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
	"github.com/litogalan/portfolio-cms/internal/core/service"
	mongodb "github.com/litogalan/portfolio-cms/internal/infrastructure/db/mongo"
	redisdb "github.com/litogalan/portfolio-cms/internal/infrastructure/db/redis"
)

// Deps carries the external dependencies the router wires together.
type Deps struct {
	Mongo       *mongo.Database
	Redis       *redis.Client
	Media       ports.MediaStore
	Images      ports.ImageProcessor
	Mailer      ports.Mailer
	JWTSecret   string
	TokenTTL    time.Duration
	FrontendURL string
	Logger      zerolog.Logger
}

// Auth endpoints are the brute-force target; everything else rides on the
// token.
const (
	authRateLimit  = 20
	authRateWindow = 15 * time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	projectRepo := mongodb.NewProjectRepository(deps.Mongo)
	messageRepo := mongodb.NewMessageRepository(deps.Mongo)
	skillRepo := mongodb.NewSkillRepository(deps.Mongo)
	employmentRepo := mongodb.NewEmploymentRepository(deps.Mongo)
	jobRepo := mongodb.NewJobRepository(deps.Mongo)
	subscriberRepo := mongodb.NewSubscriberRepository(deps.Mongo)

	tokenService := service.NewTokenService(deps.JWTSecret, deps.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, deps.Media, deps.Images, deps.Logger)
	projectService := service.NewProjectService(projectRepo, deps.Media, deps.Images, deps.Logger)
	messageService := service.NewMessageService(messageRepo, deps.Logger)
	skillService := service.NewSkillService(skillRepo, deps.Logger)
	employmentService := service.NewEmploymentService(employmentRepo, deps.Logger)
	jobService := service.NewJobService(jobRepo, deps.Logger)
	newsletterService := service.NewNewsletterService(subscriberRepo, deps.Mailer, deps.FrontendURL, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	messageHandler := handler.NewMessageHandler(messageService)
	skillHandler := handler.NewSkillHandler(skillService)
	employmentHandler := handler.NewEmploymentHandler(employmentService)
	jobHandler := handler.NewJobHandler(jobService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.AdminOnly()
	authLimiter := middleware.RateLimit(
		redisdb.NewRateLimitStore(deps.Redis), "auth", authRateLimit, authRateWindow, deps.Logger)

	// --- Auth ---
	auth := e.Group("/auth", authLimiter)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Users ---
	users := e.Group("/users")
	users.GET("/profile/public", userHandler.PublicProfile)
	users.GET("/profile", userHandler.Profile, authRequired)
	users.PUT("/profile", userHandler.UpdateProfile, authRequired)

	// --- Projects ---
	projects := e.Group("/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("/create", projectHandler.Create, authRequired)
	projects.PUT("/:id", projectHandler.Update, authRequired)
	projects.DELETE("/:id", projectHandler.Delete, authRequired)

	// --- Messages ---
	messages := e.Group("/messages")
	messages.POST("/send", messageHandler.Send)
	messages.GET("", messageHandler.List, authRequired)
	messages.GET("/:id", messageHandler.Get, authRequired)
	messages.PUT("/:id/status", messageHandler.UpdateStatus, authRequired)
	messages.DELETE("/:id", messageHandler.Delete, authRequired)

	// --- Skills ---
	skills := e.Group("/skills")
	skills.GET("", skillHandler.List)
	skills.POST("/add", skillHandler.Add, authRequired)
	skills.DELETE("/:id", skillHandler.Delete, authRequired, adminOnly)

	// --- Employment ---
	employment := e.Group("/employment")
	employment.GET("", employmentHandler.List)
	employment.GET("/:id", employmentHandler.Get)
	employment.POST("/create", employmentHandler.Create, authRequired)
	employment.PUT("/update/:id", employmentHandler.Update, authRequired)
	employment.DELETE("/delete/:id", employmentHandler.Delete, authRequired)

	// --- Jobs ---
	jobs := e.Group("/jobs", authRequired)
	jobs.GET("", jobHandler.List)
	jobs.GET("/:id", jobHandler.Get)
	jobs.POST("", jobHandler.Create)
	jobs.PUT("/:id", jobHandler.Update)
	jobs.DELETE("/:id", jobHandler.Delete)

	// --- Newsletter ---
	newsletter := e.Group("/newsletter")
	newsletter.POST("/subscribe", newsletterHandler.Subscribe)
	newsletter.GET("/unsubscribe/:token", newsletterHandler.Unsubscribe)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
