package places

import (
	"strings"
	"testing"

	"maps_gateway/internal/googlemaps"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestNormalizeAddressFallback(t *testing.T) {
	raw := []googlemaps.Place{
		{Name: "A", Vicinity: "12 Short St", FormattedAddress: "12 Short St, Town"},
		{Name: "B", FormattedAddress: "9 Long Ave, Town"},
		{Name: "C"},
	}

	got := Normalize(raw, 0)
	if got[0].Address != "12 Short St" {
		t.Errorf("vicinity should win: got %q", got[0].Address)
	}
	if got[1].Address != "9 Long Ave, Town" {
		t.Errorf("formatted_address fallback: got %q", got[1].Address)
	}
	if got[2].Address != "" {
		t.Errorf("expected empty address, got %q", got[2].Address)
	}
}

func TestNormalizeOptionalFieldsStayNull(t *testing.T) {
	raw := []googlemaps.Place{
		{Name: "rated", Rating: floatPtr(4.5), PriceLevel: intPtr(2)},
		{Name: "unrated"},
	}

	got := Normalize(raw, 0)
	if got[0].Rating == nil || *got[0].Rating != 4.5 {
		t.Errorf("expected rating 4.5, got %v", got[0].Rating)
	}
	if got[1].Rating != nil {
		t.Error("missing rating must stay nil, not zero")
	}
	if got[1].PriceLevel != nil {
		t.Error("missing price level must stay nil, not zero")
	}
	if got[1].Location != (googlemaps.LatLng{}) {
		t.Errorf("missing geometry should default to origin, got %+v", got[1].Location)
	}
	if got[1].Types == nil {
		t.Error("types must normalize to an empty slice, not nil")
	}
}

func TestNormalizeAppliesLimit(t *testing.T) {
	raw := make([]googlemaps.Place, 15)
	for i := range raw {
		raw[i].Name = "p"
	}

	if got := Normalize(raw, searchResultLimit); len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
	if got := Normalize(raw, 0); len(got) != 15 {
		t.Errorf("limit 0 must not cap: len = %d, want 15", len(got))
	}
}

func TestCenter(t *testing.T) {
	records := []Place{
		{Location: googlemaps.LatLng{Lat: 10, Lng: 20}},
		{Location: googlemaps.LatLng{Lat: 20, Lng: 40}},
		{Location: googlemaps.LatLng{Lat: 30, Lng: 60}},
	}

	lat, lng := Center(records)
	if lat != 20 || lng != 40 {
		t.Errorf("Center() = %v, %v; want 20, 40", lat, lng)
	}

	lat, lng = Center(nil)
	if lat != 0 || lng != 0 {
		t.Errorf("Center(empty) = %v, %v; want 0, 0", lat, lng)
	}
}

func TestBuildEmbedsSkipsMissingPlaceID(t *testing.T) {
	records := []Place{
		{Name: "with id", PlaceID: "p1"},
		{Name: "no id"},
		{Name: "also with id", PlaceID: "p2"},
	}

	got := BuildEmbeds(records, embedResultLimit)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].PlaceID != "p1" || got[1].PlaceID != "p2" {
		t.Errorf("unexpected embeds %+v", got)
	}
	if !strings.Contains(got[0].EmbedHTML, "place_id%3Ap1") {
		t.Errorf("embed html should reference the place id: %q", got[0].EmbedHTML)
	}
	if !strings.Contains(got[0].DirectionsURL, "destination_place_id=p1") {
		t.Errorf("directions url should carry the place id: %q", got[0].DirectionsURL)
	}
}

func TestBuildEmbedsLimit(t *testing.T) {
	records := make([]Place, 8)
	for i := range records {
		records[i].PlaceID = "p"
	}
	if got := BuildEmbeds(records, embedResultLimit); len(got) != 5 {
		t.Errorf("len = %d, want 5", len(got))
	}
}

func TestMapURLEscapesQuery(t *testing.T) {
	got := mapURL("best döner", "Berlin")
	if !strings.HasPrefix(got, "https://www.google.com/maps/search/?api=1&query=") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("url must not contain raw spaces: %q", got)
	}
}
