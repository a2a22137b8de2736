// Package metrics defines the gateway's Prometheus collectors.
// This is part of the platform layer and contains no business logic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts inbound requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_gateway_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// UpstreamRequestsTotal counts outbound Google Maps calls by endpoint
	// and outcome (ok, zero_results, http_error, api_error, unavailable).
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maps_gateway_upstream_requests_total",
			Help: "Total number of upstream Google Maps API requests",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamRequestDuration observes outbound call latency per endpoint.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maps_gateway_upstream_request_duration_seconds",
			Help:    "Upstream Google Maps API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
		[]string{"endpoint"},
	)

	// RateLimitRejections counts requests dropped by the sliding-window limiter.
	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "maps_gateway_rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// GeocodeCacheHits counts geocode lookups served from the in-memory cache.
	GeocodeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "maps_gateway_geocode_cache_hits_total",
			Help: "Total number of geocode cache hits",
		},
	)

	// GeocodeCacheMisses counts geocode lookups that went upstream.
	GeocodeCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "maps_gateway_geocode_cache_misses_total",
			Help: "Total number of geocode cache misses",
		},
	)
)
