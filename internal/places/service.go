package places

import (
	"context"
	"fmt"
	"strings"

	"maps_gateway/internal/geocode"
	"maps_gateway/internal/googlemaps"
	"maps_gateway/platform/apperr"
	"maps_gateway/platform/logger"
)

// defaultRadius is the search radius in meters when the caller omits one.
const defaultRadius = 2000

// Upstream is the slice of the Google Maps client the service needs.
type Upstream interface {
	TextSearch(ctx context.Context, p googlemaps.TextSearchParams) (*googlemaps.PlacesResponse, error)
	NearbySearch(ctx context.Context, p googlemaps.NearbySearchParams) (*googlemaps.PlacesResponse, error)
	PlaceDetails(ctx context.Context, placeID string) (*googlemaps.PlaceDetailsResponse, error)
}

// LocationResolver resolves free-text locations to coordinates.
type LocationResolver interface {
	Resolve(ctx context.Context, text string) (googlemaps.LatLng, error)
	ResolveBias(ctx context.Context, text string) (googlemaps.LatLng, bool)
}

// Service implements the place search, details and geocode operations.
type Service struct {
	upstream Upstream
	geocoder LocationResolver
	log      *logger.Logger
}

// NewService creates the places service.
func NewService(upstream Upstream, geocoder LocationResolver, log *logger.Logger) *Service {
	return &Service{
		upstream: upstream,
		geocoder: geocoder,
		log:      log,
	}
}

// Search runs a place search: optional location bias via the geocoder,
// then a text (or nearby) search, then normalization into the response
// shape. Zero upstream results are a not-found error naming the query.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, apperr.Validation("Missing required field: query")
	}

	radius := req.Radius
	if radius <= 0 {
		radius = defaultRadius
	}

	var bias string
	biased := false
	if req.Location != "" {
		// Bias failures degrade to an unbiased search, they never abort it.
		if ll, ok := s.geocoder.ResolveBias(ctx, req.Location); ok {
			bias = geocode.FormatLatLng(ll)
			biased = true
		}
	}

	resp, err := s.runSearch(ctx, req, bias, biased, radius)
	if err != nil {
		return nil, apperr.Upstream("place search failed", err).WithOp("places.Search")
	}

	if len(resp.Results) == 0 {
		return nil, apperr.NotFound(noResultsMessage(req.Query, req.Location))
	}

	all := Normalize(resp.Results, 0)
	centerLat, centerLng := Center(all)

	capped := all
	if len(capped) > searchResultLimit {
		capped = capped[:searchResultLimit]
	}

	return &SearchResponse{
		Places:    capped,
		MapURL:    mapURL(req.Query, req.Location),
		EmbedHTML: embedHTML(searchText(req.Query, req.Location)),
		CenterLat: centerLat,
		CenterLng: centerLng,
		Embeds:    BuildEmbeds(all, embedResultLimit),
	}, nil
}

// runSearch picks nearby search for type-style queries with a resolved
// location (the "find nearby gas stations" shape) and text search for
// everything else.
func (s *Service) runSearch(ctx context.Context, req SearchRequest, bias string, biased bool, radius int) (*googlemaps.PlacesResponse, error) {
	if req.Type != "" && biased && typeQuery(req.Query, req.Type) {
		return s.upstream.NearbySearch(ctx, googlemaps.NearbySearchParams{
			Location: bias,
			Radius:   radius,
			Type:     req.Type,
		})
	}

	return s.upstream.TextSearch(ctx, googlemaps.TextSearchParams{
		Query:    req.Query,
		Location: bias,
		Radius:   radius,
		Type:     req.Type,
	})
}

// Details returns the raw provider detail object for one place.
func (s *Service) Details(ctx context.Context, placeID string) (map[string]interface{}, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, apperr.Validation("Missing required parameter: place_id")
	}

	resp, err := s.upstream.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, apperr.Upstream("place details failed", err).WithOp("places.Details")
	}
	if resp.Result == nil {
		return nil, apperr.NotFound("No details found for place: " + placeID)
	}

	return resp.Result, nil
}

// Geocode is the strict geocode-only path: failures surface as typed
// errors instead of degrading.
func (s *Service) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	if strings.TrimSpace(address) == "" {
		return nil, apperr.Validation("Missing required parameter: address")
	}

	ll, err := s.geocoder.Resolve(ctx, address)
	if err != nil {
		return nil, err
	}

	return &GeocodeResponse{
		Address: address,
		Lat:     ll.Lat,
		Lng:     ll.Lng,
	}, nil
}

// typeQuery reports whether the free-text query is just the place type
// restated, as produced by "find nearby <type>" style calls.
func typeQuery(query, placeType string) bool {
	q := strings.TrimSpace(query)
	return strings.EqualFold(q, placeType) ||
		strings.EqualFold(q, strings.ReplaceAll(placeType, "_", " "))
}

func noResultsMessage(query, location string) string {
	if location != "" {
		return fmt.Sprintf("No places found for '%s' in %s", query, location)
	}
	return fmt.Sprintf("No places found for '%s'", query)
}
