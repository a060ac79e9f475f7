package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"userhub/internal/handler"
	"userhub/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler *handler.UserHandler

	// AccessTokenSecret is the HMAC secret the auth middleware
	// verifies bearer tokens against.
	AccessTokenSecret string

	// RedisClient enables idempotent replays of mutating requests
	// when non-nil.
	RedisClient *redis.Client

	NewRelicApp *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestID())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Root greeting.
	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello From crud!")
	})

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// User routes. Only the collection listing requires a token.
	users := router.Group("/users")
	{
		users.POST("", deps.UserHandler.Create)
		users.GET("", middleware.JWTAuth(deps.AccessTokenSecret), deps.UserHandler.GetAll)
		users.GET("/:id", deps.UserHandler.GetByID)
		users.PUT("/:id", deps.UserHandler.Update)
		users.DELETE("/:id", deps.UserHandler.Delete)
	}

	return router
}
