package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/dcapulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions carries the startup settings the router needs.
type RouterOptions struct {
	AllowedOrigin  string        // single origin allowed by CORS
	RequestTimeout time.Duration // bound on the whole request context; 0 disables
	RateLimit      int           // requests per minute per client IP; 0 disables
}

// NewRouter creates a Gin engine with middlewares and routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the simulation routes (/calculate and /api/v1/calculate).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(opts.AllowedOrigin),
		middleware.RateLimiter(opts.RateLimit, time.Minute),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Simulation ───────────────────────────────
	router.POST("/calculate", handler.Calculate)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/calculate", handler.Calculate)
	}

	return router
}
