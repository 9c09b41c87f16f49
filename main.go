package main

import (
	"log"
	"mime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/thenewstale/admin-console/config"
	"github.com/thenewstale/admin-console/middleware"
	"github.com/thenewstale/admin-console/routes"
	"github.com/thenewstale/admin-console/services"
	"github.com/thenewstale/admin-console/session"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Ensure correct MIME type for SVG uploads
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	cfg := config.Load()

	// Connect to Redis; sessions degrade to in-memory storage when it is down
	rdb := config.ConnectRedis()
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb)
	} else {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, cfg.JWTSecret, cfg.SessionEncryptionKey, cfg.SessionTTL)

	// Upstream platform clients, one per host
	contentClient := services.NewPlatformClient(cfg.ContentAPIBaseURL, cfg.UpstreamTimeout, cfg.UpstreamDebug)
	commerceClient := services.NewPlatformClient(cfg.CommerceAPIBaseURL, cfg.UpstreamTimeout, cfg.UpstreamDebug)
	contentService := services.NewContentService(contentClient, 5*time.Minute)
	commerceService := services.NewCommerceService(commerceClient)

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"},
		AllowInlineJS:  false,
		AllowEval:      false,
	}))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Admin console gateway is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		sessionBackend := "redis"
		if rdb == nil {
			sessionBackend = "memory"
		}
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"sessions": sessionBackend,
		})
	})

	// Register console routes
	routes.RegisterConsoleRoutes(e, contentService, commerceService, sessions, rdb)

	// Start server
	defer config.CloseRedis()
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
