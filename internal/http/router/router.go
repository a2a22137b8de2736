// Package router assembles the gin engine: shared middleware, health and
// metrics endpoints, and domain module registration.
package router

import (
	"net/http"
	"strconv"

	apphttp "maps_gateway/internal/http"
	"maps_gateway/platform/httpkit"
	"maps_gateway/platform/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New builds the HTTP engine from the assembled application.
// Middleware ordering on protected routes is fixed: auth, then rate limit,
// then handler.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(requestMetrics())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: app.Config.GetCORSOrigins(),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept", "Authorization"},
	}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ctx := &apphttp.RouterContext{
		Engine:    engine,
		Protected: engine.Group("/", httpkit.AuthRequired(app.Config, app.Logger), app.Limiter.RateLimit()),
		Public:    engine.Group("/api"),
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("registered module routes", "module", module.Name())
	}

	return engine
}

// requestMetrics counts requests by route template so unmatched paths do
// not explode label cardinality.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
