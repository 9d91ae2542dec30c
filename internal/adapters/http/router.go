package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotable/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotable/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotable/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotable/internal/platform/config"
	"github.com/jsamuelsen/quotable/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// AuthorHandler handles author endpoints.
	AuthorHandler *handlers.AuthorHandler

	// QuoteHandler handles quote endpoints.
	QuoteHandler *handlers.QuoteHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. OpenTelemetry - tracing and metrics
//  4. Logging - request logging (skips health endpoints)
//
// Route groups:
//   - /-/ (internal): health endpoints
//   - / (public API): author and quote endpoints
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(middleware.Recovery(cfg.Logger), middleware.RequestID())
	engine.Use(telemetry.Middleware(cfg.AppConfig.Name)...)
	engine.Use(middleware.Logging(cfg.Logger))

	// Unknown routes get the same envelope as missing entities
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.MessageNotFound))
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	if cfg.AuthorHandler != nil {
		cfg.AuthorHandler.RegisterAuthorRoutes(&engine.RouterGroup)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(&engine.RouterGroup)
	}
}
