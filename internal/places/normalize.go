package places

import (
	"fmt"
	"net/url"
	"strings"

	"maps_gateway/internal/googlemaps"
)

const (
	// searchResultLimit caps the places array in a search response.
	searchResultLimit = 10
	// embedResultLimit caps the generated embed descriptors.
	embedResultLimit = 5
)

// Normalize maps raw provider records into Place values, applying the
// defaulting rules: address falls back vicinity -> formatted_address ->
// empty, missing rating/price stay null, missing location stays {0,0}.
// A limit <= 0 means no cap.
func Normalize(raw []googlemaps.Place, limit int) []Place {
	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	out := make([]Place, 0, len(raw))
	for _, r := range raw {
		address := r.Vicinity
		if address == "" {
			address = r.FormattedAddress
		}

		types := r.Types
		if types == nil {
			types = []string{}
		}

		out = append(out, Place{
			Name:       r.Name,
			Address:    address,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			PlaceID:    r.PlaceID,
			Location:   r.Geometry.Location,
			Types:      types,
		})
	}
	return out
}

// Center returns the arithmetic mean of the records' coordinates.
// Empty input yields {0,0}; callers short-circuit on zero results before
// reaching this point.
func Center(records []Place) (float64, float64) {
	if len(records) == 0 {
		return 0, 0
	}

	var sumLat, sumLng float64
	for _, r := range records {
		sumLat += r.Location.Lat
		sumLng += r.Location.Lng
	}
	n := float64(len(records))
	return sumLat / n, sumLng / n
}

// BuildEmbeds generates one embed descriptor per top result. Records
// without a place ID are skipped; the ID is required for the deep links.
func BuildEmbeds(records []Place, limit int) []Embed {
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	out := make([]Embed, 0, len(records))
	for _, r := range records {
		if r.PlaceID == "" {
			continue
		}
		out = append(out, Embed{
			PlaceID:       r.PlaceID,
			Name:          r.Name,
			EmbedHTML:     embedHTML("place_id:" + r.PlaceID),
			DirectionsURL: placeDirectionsURL(r),
		})
	}
	return out
}

// mapURL builds the shareable Google Maps link for the whole search.
func mapURL(query, location string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(searchText(query, location))
}

// embedHTML renders an iframe for the keyless Google Maps embed endpoint.
func embedHTML(q string) string {
	return fmt.Sprintf(
		`<iframe width="600" height="450" style="border:0" loading="lazy" allowfullscreen src="https://maps.google.com/maps?q=%s&output=embed"></iframe>`,
		url.QueryEscape(q),
	)
}

func placeDirectionsURL(r Place) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&destination=%s&destination_place_id=%s",
		url.QueryEscape(r.Name),
		url.QueryEscape(r.PlaceID),
	)
}

func searchText(query, location string) string {
	if location == "" {
		return query
	}
	return strings.TrimSpace(query + " " + location)
}
