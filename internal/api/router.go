package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vistamar/pousada-api/internal/api/handler"
	"github.com/vistamar/pousada-api/internal/api/metrics"
	"github.com/vistamar/pousada-api/internal/api/middleware"
	"github.com/vistamar/pousada-api/internal/core/domain"
	"github.com/vistamar/pousada-api/internal/core/service"
	"github.com/vistamar/pousada-api/internal/infrastructure/config"
	mongodb "github.com/vistamar/pousada-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vistamar/pousada-api/internal/infrastructure/db/redis"
	"github.com/vistamar/pousada-api/internal/infrastructure/storage/s3store"
)

// Dependencies carries the external collaborators the router wires the
// handlers to.
type Dependencies struct {
	Mongo *mongo.Database
	Redis *redis.Client
	Media *s3store.Store
	Cfg   *config.Config
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pousada"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(deps.Mongo)
	bookingRepo := mongodb.NewBookingRepository(deps.Mongo)
	infoRepo := mongodb.NewInfoRepository(deps.Mongo)
	createLock := redisdb.NewCreateLock(deps.Redis)

	recorder := metrics.Recorder{}
	tokenService := service.NewTokenService(deps.Cfg.JWTSecret, deps.Cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokenService, recorder, deps.Log)
	bookingService := service.NewBookingService(bookingRepo, accountRepo, createLock, recorder, deps.Log)
	infoService := service.NewInfoService(infoRepo, deps.Log)
	mediaService := service.NewMediaService(deps.Media, recorder, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	infoHandler := handler.NewInfoHandler(infoService)
	imageHandler := handler.NewImageHandler(mediaService)

	requireAuth := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Users ---
	e.GET("/users", userHandler.List, requireAuth, adminOnly)
	e.PUT("/profile", userHandler.UpdateProfile, requireAuth)

	// --- Site configuration ---
	e.GET("/pousada-info", infoHandler.Get)
	e.PUT("/pousada-info", infoHandler.Update, requireAuth, adminOnly)

	// --- Bookings ---
	e.GET("/bookings", bookingHandler.List, requireAuth)
	e.POST("/bookings", bookingHandler.Create, requireAuth)
	e.PUT("/bookings/:id", bookingHandler.Update, requireAuth, adminOnly)
	e.DELETE("/bookings/:id", bookingHandler.Delete, requireAuth, adminOnly)

	// --- Images ---
	e.GET("/images", imageHandler.List)
	e.GET("/images/:id", imageHandler.Get)
	e.POST("/images", imageHandler.Upload, requireAuth, adminOnly)
	e.DELETE("/images/:id", imageHandler.Delete, requireAuth, adminOnly)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis, deps.Media)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
