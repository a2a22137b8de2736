// Package geocode resolves free-text locations to coordinates via the
// Google Maps geocode endpoint. Coordinate-like input is passed through
// without a network call. Two failure modes are exposed: Resolve surfaces
// typed errors for the dedicated geocode path, ResolveBias degrades to
// "no bias" for the search path.
package geocode

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"maps_gateway/internal/googlemaps"
	"maps_gateway/platform/apperr"
	"maps_gateway/platform/config"
	"maps_gateway/platform/logger"
	"maps_gateway/platform/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// coordPattern matches "lat,lng" numeric input such as "37.77,-122.42".
var coordPattern = regexp.MustCompile(`^\s*([-+]?\d{1,3}(?:\.\d+)?)\s*,\s*([-+]?\d{1,3}(?:\.\d+)?)\s*$`)

// Client is the slice of the upstream client the geocoder needs.
type Client interface {
	Geocode(ctx context.Context, address string) (*googlemaps.GeocodeResponse, error)
}

// Geocoder resolves location text to coordinates, caching upstream results.
type Geocoder struct {
	client Client
	cache  *expirable.LRU[string, googlemaps.LatLng]
	group  singleflight.Group
	log    *logger.Logger
}

// New creates a Geocoder with an expiring LRU over upstream lookups.
func New(client Client, cfg config.GeocodeCacheConfig, log *logger.Logger) *Geocoder {
	return &Geocoder{
		client: client,
		cache:  expirable.NewLRU[string, googlemaps.LatLng](cfg.GetGeocodeCacheSize(), nil, cfg.GetGeocodeCacheTTL()),
		log:    log,
	}
}

// ParseLatLng interprets text as a "lat,lng" pair, reporting ok=false when
// the input is not coordinate-shaped.
func ParseLatLng(text string) (googlemaps.LatLng, bool) {
	m := coordPattern.FindStringSubmatch(text)
	if m == nil {
		return googlemaps.LatLng{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return googlemaps.LatLng{}, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return googlemaps.LatLng{}, false
	}
	return googlemaps.LatLng{Lat: lat, Lng: lng}, true
}

// FormatLatLng renders a coordinate pair as the "lat,lng" string the
// provider expects in location parameters.
func FormatLatLng(ll googlemaps.LatLng) string {
	return strconv.FormatFloat(ll.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(ll.Lng, 'f', -1, 64)
}

// Resolve resolves location text to coordinates, surfacing failures as
// typed errors: unresolvable text is not-found, provider failures are
// upstream errors.
func (g *Geocoder) Resolve(ctx context.Context, text string) (googlemaps.LatLng, error) {
	if ll, ok := ParseLatLng(text); ok {
		return ll, nil
	}

	key := cacheKey(text)
	if ll, ok := g.cache.Get(key); ok {
		metrics.GeocodeCacheHits.Inc()
		return ll, nil
	}
	metrics.GeocodeCacheMisses.Inc()

	// Collapse concurrent lookups for the same address into one upstream call.
	result, err, _ := g.group.Do(key, func() (interface{}, error) {
		resp, err := g.client.Geocode(ctx, text)
		if err != nil {
			return googlemaps.LatLng{}, apperr.Upstream("geocoding failed", err).WithOp("geocode.Resolve")
		}
		if len(resp.Results) == 0 {
			return googlemaps.LatLng{}, apperr.NotFound("no results found for address: " + text)
		}
		ll := resp.Results[0].Geometry.Location
		g.cache.Add(key, ll)
		return ll, nil
	})
	if err != nil {
		return googlemaps.LatLng{}, err
	}

	return result.(googlemaps.LatLng), nil
}

// ResolveBias resolves location text for search biasing. Zero results and
// transient provider failures both degrade to ok=false so the parent
// search proceeds unbiased instead of aborting.
func (g *Geocoder) ResolveBias(ctx context.Context, text string) (googlemaps.LatLng, bool) {
	ll, err := g.Resolve(ctx, text)
	if err != nil {
		g.log.Debug("location bias unresolved", "location", text, "error", err.Error())
		return googlemaps.LatLng{}, false
	}
	return ll, true
}

func cacheKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
