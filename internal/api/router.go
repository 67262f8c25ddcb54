package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecodot/clubhub/internal/api/handler"
	"github.com/ecodot/clubhub/internal/api/middleware"
	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/service"
	mongodb "github.com/ecodot/clubhub/internal/infrastructure/db/mongo"
	redisdb "github.com/ecodot/clubhub/internal/infrastructure/db/redis"
	"github.com/ecodot/clubhub/internal/infrastructure/token"
)

// Deps carries everything the router needs to assemble the API. Services are
// composed here once at startup and passed down; there is no ambient registry.
type Deps struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Activities handler.ActivityDispatcher
	Logger     zerolog.Logger
	JWTSecret  string
	CookieName string
	LoginTTL   time.Duration
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
	e.Use(echoprometheus.NewMiddleware("clubhub"))

	// --- Repositories and stores ---
	accountRepo := mongodb.NewAccountRepository(deps.DB)
	clubRepo := mongodb.NewClubRepository(deps.DB)
	catalogRepo := mongodb.NewCatalogRepository(deps.DB)
	sessionStore := redisdb.NewSessionStore(deps.Redis)
	codec := token.NewCodec(deps.JWTSecret)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, sessionStore, codec, deps.LoginTTL, deps.Logger)
	accountService := service.NewAccountService(accountRepo, catalogRepo, deps.Logger)
	clubService := service.NewClubService(clubRepo, catalogRepo, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, deps.Activities, deps.CookieName, deps.LoginTTL)
	accountHandler := handler.NewAccountHandler(accountService, authService, deps.Activities, deps.CookieName)
	clubHandler := handler.NewClubHandler(clubService, deps.Activities)

	sessionGuard := middleware.Session(codec, sessionStore, deps.CookieName, deps.LoginTTL, deps.Logger)
	adminGuard := middleware.ClubRole(clubService, domain.PositionAdmin, deps.Logger)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, sessionGuard)

	// --- Account routes ---
	e.POST("/account", accountHandler.Register)
	e.GET("/account/profile", accountHandler.Profile, sessionGuard)
	e.PATCH("/account", accountHandler.Update, sessionGuard)
	e.DELETE("/account", accountHandler.Delete, sessionGuard)

	// --- Club routes ---
	e.POST("/club", clubHandler.Create, sessionGuard)
	e.GET("/club/duplicate/name/:clubName", clubHandler.CheckName, sessionGuard)
	e.POST("/club/:clubIdx/join-request", clubHandler.JoinRequest, sessionGuard)
	e.PATCH("/club/:clubIdx/recruit", clubHandler.SetRecruit, sessionGuard, adminGuard)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
