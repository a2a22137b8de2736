package places

import "maps_gateway/internal/googlemaps"

// SearchRequest is the body of POST /search-places (and the parameters of
// the search_places function call).
type SearchRequest struct {
	Query    string `json:"query" binding:"required"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Radius   int    `json:"radius" binding:"omitempty,gte=0"`
}

// Place is the normalized, minimal place record returned to callers.
type Place struct {
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	Rating     *float64          `json:"rating"`
	PriceLevel *int              `json:"price_level"`
	PlaceID    string            `json:"place_id"`
	Location   googlemaps.LatLng `json:"location"`
	Types      []string          `json:"types"`
}

// Embed is a generated map embed for one search result; it is built from
// the normalized record, never fetched upstream.
type Embed struct {
	PlaceID       string `json:"place_id"`
	Name          string `json:"name"`
	EmbedHTML     string `json:"embed_html"`
	DirectionsURL string `json:"directions_url"`
}

// SearchResponse is the body of a successful place search.
type SearchResponse struct {
	Places    []Place `json:"places"`
	MapURL    string  `json:"map_url"`
	EmbedHTML string  `json:"embed_html"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Embeds    []Embed `json:"embeds"`
}

// GeocodeResponse is the body of the open geocode endpoint.
type GeocodeResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
