package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"maps_gateway/internal/directions"
	"maps_gateway/internal/geocode"
	"maps_gateway/internal/googlemaps"
	apphttp "maps_gateway/internal/http"
	"maps_gateway/internal/http/router"
	"maps_gateway/internal/llm"
	"maps_gateway/internal/places"
	"maps_gateway/platform/config"
	"maps_gateway/platform/logger"
	"maps_gateway/platform/ratelimit"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Fail fast: required secrets must be present before serving.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if !strings.EqualFold(cfg.Env, "development") {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	mapsClient := googlemaps.NewClient(cfg, log)
	geocoder := geocode.New(mapsClient, cfg, log)
	limiter := ratelimit.New(cfg.RateLimitWindow, cfg.RateLimitMax, log)

	// ========================================================================
	// Domain Modules
	// ========================================================================

	placesModule := places.NewModule(mapsClient, geocoder, log)
	directionsModule := directions.NewModule(mapsClient, log)
	llmModule := llm.NewModule(placesModule.Service(), directionsModule.Service(), log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Limiter: limiter,
		Modules: []apphttp.Module{
			placesModule,
			directionsModule,
			llmModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}
}
