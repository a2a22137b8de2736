// Package directions implements the directions query: origin/destination
// text goes straight to the provider, the first route/leg is summarized,
// and a shareable deep link is generated.
package directions

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"maps_gateway/internal/googlemaps"
	"maps_gateway/platform/apperr"
	"maps_gateway/platform/logger"
)

// validModes are the travel modes the provider accepts; anything else
// falls back to driving, matching the original client behavior.
var validModes = map[string]bool{
	"driving":   true,
	"walking":   true,
	"transit":   true,
	"bicycling": true,
}

// Request is the body of POST /directions (and the parameters of the
// get_directions function call).
type Request struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Mode        string `json:"mode"`
}

// Response summarizes the first route/leg of the provider response.
type Response struct {
	Route        string `json:"route"`
	Duration     string `json:"duration"`
	Distance     string `json:"distance"`
	StartAddress string `json:"start_address"`
	EndAddress   string `json:"end_address"`
	Mode         string `json:"mode"`
	URL          string `json:"url"`
}

// Upstream is the slice of the Google Maps client the service needs.
type Upstream interface {
	Directions(ctx context.Context, p googlemaps.DirectionsParams) (*googlemaps.DirectionsResponse, error)
}

// Service implements the directions operation.
type Service struct {
	upstream Upstream
	log      *logger.Logger
}

// NewService creates the directions service.
func NewService(upstream Upstream, log *logger.Logger) *Service {
	return &Service{upstream: upstream, log: log}
}

// Directions fetches a route between two locations. An empty route set is
// a not-found error naming the mode.
func (s *Service) Directions(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return nil, apperr.Validation("Missing required fields: origin and destination")
	}

	mode := NormalizeMode(req.Mode)

	resp, err := s.upstream.Directions(ctx, googlemaps.DirectionsParams{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        mode,
	})
	if err != nil {
		return nil, apperr.Upstream("directions lookup failed", err).WithOp("directions.Directions")
	}

	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No %s route found between '%s' and '%s'", mode, req.Origin, req.Destination))
	}

	route := resp.Routes[0]
	leg := route.Legs[0]

	return &Response{
		Route:        route.Summary,
		Duration:     leg.Duration.Text,
		Distance:     leg.Distance.Text,
		StartAddress: leg.StartAddress,
		EndAddress:   leg.EndAddress,
		Mode:         mode,
		URL:          shareURL(req.Origin, req.Destination, mode),
	}, nil
}

// NormalizeMode lowercases the travel mode and defaults anything
// unrecognized to driving.
func NormalizeMode(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	if !validModes[m] {
		return "driving"
	}
	return m
}

// shareURL builds the turn-by-turn deep link with origin and destination
// URL-encoded.
func shareURL(origin, destination, mode string) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s&travelmode=%s",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		url.QueryEscape(mode),
	)
}
