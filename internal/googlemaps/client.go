// Package googlemaps implements the outbound client for the Google Maps
// web service API: URL construction, API key attachment, response decoding
// and provider status classification. The client performs zero retries;
// callers decide how failures propagate.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"maps_gateway/platform/config"
	"maps_gateway/platform/logger"
	"maps_gateway/platform/metrics"

	"golang.org/x/time/rate"
)

// envelope is implemented by every response type so the transport layer
// can classify the provider-level status uniformly.
type envelope interface {
	statusCode() string
	errorMessage() string
}

// Client calls the Google Maps web service API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	log        *logger.Logger
}

// NewClient creates a Google Maps client. The QPS limiter throttles
// outbound calls so a burst of gateway traffic cannot blow the provider
// quota.
func NewClient(cfg config.UpstreamConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: cfg.GetMapsTimeout(),
		},
		baseURL: cfg.GetMapsBaseURL(),
		apiKey:  cfg.GetMapsAPIKey(),
		limiter: rate.NewLimiter(rate.Limit(cfg.GetMapsQPS()), cfg.GetMapsBurst()),
		log:     log,
	}
}

// get performs one outbound request against endpoint (e.g. "geocode/json"),
// omitting empty params and attaching the API key. Failures classify as:
// transport failure -> *UnavailableError, non-2xx -> *HTTPError, body
// status outside {OK, ZERO_RESULTS} -> *APIError.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out envelope) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &UnavailableError{Err: err}
	}

	values := url.Values{}
	for key, value := range params {
		if value == "" {
			continue
		}
		values.Set(key, value)
	}
	values.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &UnavailableError{Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.UpstreamError(endpoint, err)
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "unavailable").Inc()
		return &UnavailableError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode}
		c.log.UpstreamError(endpoint, httpErr)
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "http_error").Inc()
		return httpErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.UpstreamError(endpoint, err)
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return &UnavailableError{Err: err}
	}

	switch out.statusCode() {
	case StatusOK:
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	case StatusZeroResults:
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "zero_results").Inc()
	default:
		apiErr := &APIError{Status: out.statusCode(), Message: out.errorMessage()}
		c.log.UpstreamError(endpoint, apiErr)
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "api_error").Inc()
		return apiErr
	}

	return nil
}

// Geocode resolves a free-text address to coordinates.
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	var out GeocodeResponse
	err := c.get(ctx, "geocode/json", map[string]string{
		"address": address,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TextSearchParams are the inputs for a place text search.
type TextSearchParams struct {
	Query    string
	Location string // "lat,lng" bias, optional
	Radius   int    // meters, ignored when zero
	Type     string // place type filter, optional
}

// TextSearch runs a free-text place search, optionally biased to a location.
func (c *Client) TextSearch(ctx context.Context, p TextSearchParams) (*PlacesResponse, error) {
	var out PlacesResponse
	err := c.get(ctx, "place/textsearch/json", map[string]string{
		"query":    p.Query,
		"location": p.Location,
		"radius":   intParam(p.Radius),
		"type":     p.Type,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// NearbySearchParams are the inputs for a nearby place search.
type NearbySearchParams struct {
	Location string // "lat,lng", required
	Radius   int    // meters
	Type     string
	Keyword  string
}

// NearbySearch finds places of a type around a resolved location.
func (c *Client) NearbySearch(ctx context.Context, p NearbySearchParams) (*PlacesResponse, error) {
	var out PlacesResponse
	err := c.get(ctx, "place/nearbysearch/json", map[string]string{
		"location": p.Location,
		"radius":   intParam(p.Radius),
		"type":     p.Type,
		"keyword":  p.Keyword,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceDetails fetches the raw detail object for one place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetailsResponse, error) {
	var out PlaceDetailsResponse
	err := c.get(ctx, "place/details/json", map[string]string{
		"place_id": placeID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DirectionsParams are the inputs for a directions query.
type DirectionsParams struct {
	Origin      string
	Destination string
	Mode        string
}

// Directions fetches routes between two locations.
func (c *Client) Directions(ctx context.Context, p DirectionsParams) (*DirectionsResponse, error) {
	var out DirectionsResponse
	err := c.get(ctx, "directions/json", map[string]string{
		"origin":      p.Origin,
		"destination": p.Destination,
		"mode":        p.Mode,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func intParam(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
