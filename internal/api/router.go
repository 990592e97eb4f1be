package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/upturn/portfolio-api/internal/api/handler"
	"github.com/upturn/portfolio-api/internal/api/middleware"
	"github.com/upturn/portfolio-api/internal/core/domain"
	"github.com/upturn/portfolio-api/internal/core/service"
	mongodb "github.com/upturn/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/upturn/portfolio-api/internal/infrastructure/db/redis"
	"github.com/upturn/portfolio-api/internal/infrastructure/http/handlers"
	"github.com/upturn/portfolio-api/internal/pkg/config"
)

const tokenTTL = time.Hour

// contentRoute describes the route set one content collection gets. Empty
// path fields skip that route; profile and slider additionally register their
// update variants explicitly.
type contentRoute struct {
	collection string
	label      string
	listPath   string
	addPath    string
	deletePath string
}

var contentRoutes = []contentRoute{
	{domain.CollectionProfile, "Profile", "/getprofile", "", ""},
	{domain.CollectionExperience, "Experience", "/experience", "/addexperience", "/deleteexperience"},
	{domain.CollectionServices, "Service", "/services", "/addservice", "/deleteservices"},
	{domain.CollectionPortfolio, "Portfolio", "/portfolio", "/addportfolio", "/deleteportfolio"},
	{domain.CollectionSlider, "Slider", "/sliders", "/addslider", "/deleteslider"},
	{domain.CollectionReview, "Review", "/reviews", "/addreview", "/deletereview"},
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	revocation := redisdb.NewRevocationStore(rdb)
	tokenService := service.NewTokenService(cfg.JWTSecret, tokenTTL, revocation)
	userService := service.NewUserService(mongodb.NewUserRepository(db), log)
	contentService := service.NewContentService(mongodb.NewContentRepository(db), log)

	authHandler := handler.NewAuthHandler(tokenService, log)
	userHandler := handler.NewUserHandler(userService)

	auth := middleware.Auth(cfg.JWTSecret, revocation)
	admin := middleware.Admin(userService)

	// --- Auth routes ---
	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/logout", authHandler.Logout)

	// --- User routes ---
	e.POST("/users", userHandler.Register)
	e.GET("/users/admin/:email", userHandler.AdminStatus, auth)
	e.GET("/users", userHandler.List, auth, admin)
	e.GET("/users/:id", userHandler.GetByID, auth, admin)
	e.PATCH("/users/admin/:id", userHandler.Promote, auth, admin)
	e.PATCH("/users/revert/:id", userHandler.Demote, auth, admin)

	// --- Content routes, one handler per collection ---
	for _, route := range contentRoutes {
		h := handler.NewContentHandler(contentService, route.collection, route.label)

		e.GET(route.listPath, h.List)
		if route.addPath != "" {
			e.POST(route.addPath, h.Create, auth, admin)
		}
		if route.deletePath != "" {
			e.DELETE(route.deletePath+"/:id", h.Delete, auth, admin)
		}

		switch route.collection {
		case domain.CollectionProfile:
			e.PUT("/updateprofile", h.UpdateProfileImage, auth, admin)
		case domain.CollectionSlider:
			e.PUT("/updateslider/:id", h.Update, auth, admin)
		}
	}

	// --- Operational surface ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Upturn is ON")
	})
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
