package googlemaps

// Response envelopes for the Google Maps web service API. Every payload
// carries a "status" field; "OK" and "ZERO_RESULTS" are the only values
// treated as success.

const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry holds the location of a place result.
type Geometry struct {
	Location LatLng `json:"location"`
}

// Place is a single record from a text or nearby search.
type Place struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
	Rating           *float64 `json:"rating,omitempty"`
	PriceLevel       *int     `json:"price_level,omitempty"`
	Types            []string `json:"types"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
}

// PlacesResponse is the envelope for textsearch and nearbysearch.
type PlacesResponse struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

func (r *PlacesResponse) statusCode() string   { return r.Status }
func (r *PlacesResponse) errorMessage() string { return r.ErrorMessage }

// PlaceDetailsResponse is the envelope for place/details.
type PlaceDetailsResponse struct {
	Result       map[string]interface{} `json:"result"`
	Status       string                 `json:"status"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}

func (r *PlaceDetailsResponse) statusCode() string   { return r.Status }
func (r *PlaceDetailsResponse) errorMessage() string { return r.ErrorMessage }

// GeocodeResult is a single record from the geocode endpoint.
type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
}

// GeocodeResponse is the envelope for geocode/json.
type GeocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

func (r *GeocodeResponse) statusCode() string   { return r.Status }
func (r *GeocodeResponse) errorMessage() string { return r.ErrorMessage }

// TextValue is Google's {text, value} pair for durations and distances.
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// RouteLeg is one leg of a directions route.
type RouteLeg struct {
	Duration     TextValue `json:"duration"`
	Distance     TextValue `json:"distance"`
	StartAddress string    `json:"start_address"`
	EndAddress   string    `json:"end_address"`
}

// Route is one route alternative from the directions endpoint.
type Route struct {
	Summary string     `json:"summary"`
	Legs    []RouteLeg `json:"legs"`
}

// DirectionsResponse is the envelope for directions/json.
type DirectionsResponse struct {
	Routes       []Route `json:"routes"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

func (r *DirectionsResponse) statusCode() string   { return r.Status }
func (r *DirectionsResponse) errorMessage() string { return r.ErrorMessage }
