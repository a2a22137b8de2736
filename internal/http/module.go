// Package http provides HTTP server infrastructure including the Module
// interface that all domain modules must implement for route registration.
package http

import (
	"maps_gateway/platform/config"
	"maps_gateway/platform/logger"
	"maps_gateway/platform/ratelimit"

	"github.com/gin-gonic/gin"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.AuthConfig
}

// Module represents a bounded context that can register its HTTP routes.
// Each domain module implements this interface to encapsulate its own
// route setup, keeping the main router decoupled from specific endpoints.
type Module interface {
	// Name returns the module's identifier for logging purposes.
	Name() string
	// RegisterRoutes mounts the module's routes on the provided router group.
	// The RouterContext provides access to shared middleware and configuration.
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext provides shared dependencies for module route registration.
// This avoids passing many parameters to each module's RegisterRoutes method.
type RouterContext struct {
	// Engine is the root Gin engine for modules that need engine-level access.
	Engine *gin.Engine
	// Protected is the root-level group guarded by bearer auth and the
	// sliding-window rate limiter, in that order.
	Protected *gin.RouterGroup
	// Public is the unauthenticated /api group for the open API variant.
	Public *gin.RouterGroup
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP, CORS and auth settings).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Limiter is the inbound sliding-window rate limiter.
	Limiter *ratelimit.Limiter
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
