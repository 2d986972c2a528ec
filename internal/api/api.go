package api

import (
	"context"
	"net/http"
	"time"

	analyticsHandler "answering-service/internal/analytics/handler"
	authHandler "answering-service/internal/auth/handler"
	callLogsHandler "answering-service/internal/calllogs/handler"
	"answering-service/internal/observability"
	voiceCallHandler "answering-service/internal/voicecall/handler"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	router           *gin.RouterGroup
	db               Pinger
	metrics          *observability.Metrics
	version          string
	logger           *observability.Logger
	authHandler      authHandler.Handler
	voiceCallHandler voiceCallHandler.Handler
	callLogsHandler  callLogsHandler.Handler
	analyticsHandler analyticsHandler.Handler
}

func New(
	router *gin.RouterGroup,
	db Pinger,
	metrics *observability.Metrics,
	version string,
	logger *observability.Logger,
	authHandler authHandler.Handler,
	voiceCallHandler voiceCallHandler.Handler,
	callLogsHandler callLogsHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
) *API {
	return &API{
		router:           router,
		db:               db,
		metrics:          metrics,
		version:          version,
		logger:           logger,
		authHandler:      authHandler,
		voiceCallHandler: voiceCallHandler,
		callLogsHandler:  callLogsHandler,
		analyticsHandler: analyticsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(a.metrics.Handler()))

	apiGroup := a.router.Group("/api", a.authHandler.HandleJWTMiddleware)
	{
		apiGroup.GET("/calls", a.callLogsHandler.HandleListCalls)
		apiGroup.GET("/calls/:id", a.callLogsHandler.HandleGetCall)
		apiGroup.POST("/calls/search", a.callLogsHandler.HandleSearchCalls)
		apiGroup.GET("/stats", a.analyticsHandler.HandleGetCallStats)
	}

	a.router.POST("/incoming-call", a.voiceCallHandler.IncomingCallGuard(), a.voiceCallHandler.HandleIncomingCall)
	a.router.POST("/call-ended", a.voiceCallHandler.CallEndedGuard(), a.voiceCallHandler.HandleCallEnded)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()
		now := time.Now().UTC().Format(time.RFC3339)
		if err := a.db.Ping(ctx); err != nil {
			a.logger.Error(ctx, "health check failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":    "unhealthy",
				"error":     "database unavailable",
				"timestamp": now,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": now,
			"database":  "connected",
			"version":   a.version,
		})
	})
}

// Fallbacks answers unknown routes and methods with JSON bodies.
func Fallbacks(engine *gin.Engine) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
}
