package directions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"maps_gateway/internal/googlemaps"
	"maps_gateway/platform/apperr"
	"maps_gateway/platform/logger"
)

type fakeUpstream struct {
	lastParams googlemaps.DirectionsParams
	resp       *googlemaps.DirectionsResponse
	err        error
}

func (f *fakeUpstream) Directions(ctx context.Context, p googlemaps.DirectionsParams) (*googlemaps.DirectionsResponse, error) {
	f.lastParams = p
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func oneRoute() *googlemaps.DirectionsResponse {
	return &googlemaps.DirectionsResponse{
		Status: googlemaps.StatusOK,
		Routes: []googlemaps.Route{
			{
				Summary: "A100",
				Legs: []googlemaps.RouteLeg{
					{
						Duration:     googlemaps.TextValue{Text: "25 mins"},
						Distance:     googlemaps.TextValue{Text: "18.2 km"},
						StartAddress: "Alexanderplatz, Berlin",
						EndAddress:   "Flughafen BER",
					},
				},
			},
		},
	}
}

func TestNormalizeMode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"driving", "driving"},
		{"walking", "walking"},
		{"transit", "transit"},
		{"bicycling", "bicycling"},
		{"WALKING", "walking"},
		{" transit ", "transit"},
		{"", "driving"},
		{"teleport", "driving"},
	}

	for _, tt := range tests {
		if got := NormalizeMode(tt.in); got != tt.want {
			t.Errorf("NormalizeMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirectionsSummarizesFirstLeg(t *testing.T) {
	up := &fakeUpstream{resp: oneRoute()}
	s := NewService(up, logger.New("development"))

	resp, err := s.Directions(context.Background(), Request{Origin: "Alexanderplatz", Destination: "BER Airport"})
	if err != nil {
		t.Fatalf("Directions() error: %v", err)
	}

	if resp.Route != "A100" || resp.Duration != "25 mins" || resp.Distance != "18.2 km" {
		t.Errorf("unexpected summary %+v", resp)
	}
	if resp.StartAddress != "Alexanderplatz, Berlin" || resp.EndAddress != "Flughafen BER" {
		t.Errorf("unexpected addresses %+v", resp)
	}
	if resp.Mode != "driving" {
		t.Errorf("mode = %q, want driving default", resp.Mode)
	}
	if up.lastParams.Mode != "driving" {
		t.Errorf("upstream mode = %q, want driving", up.lastParams.Mode)
	}
}

func TestDirectionsShareURLEncodesEndpoints(t *testing.T) {
	s := NewService(&fakeUpstream{resp: oneRoute()}, logger.New("development"))

	resp, err := s.Directions(context.Background(), Request{Origin: "Unter den Linden 1", Destination: "Potsdamer Platz", Mode: "walking"})
	if err != nil {
		t.Fatalf("Directions() error: %v", err)
	}

	if !strings.Contains(resp.URL, "origin=Unter+den+Linden+1") {
		t.Errorf("origin not encoded: %q", resp.URL)
	}
	if !strings.Contains(resp.URL, "travelmode=walking") {
		t.Errorf("travel mode missing: %q", resp.URL)
	}
}

func TestDirectionsValidation(t *testing.T) {
	s := NewService(&fakeUpstream{resp: oneRoute()}, logger.New("development"))

	for _, req := range []Request{
		{Destination: "B"},
		{Origin: "A"},
		{Origin: "  ", Destination: "B"},
	} {
		_, err := s.Directions(context.Background(), req)
		if apperr.GetKind(err) != apperr.KindValidation {
			t.Errorf("%+v: expected validation error, got %v", req, err)
		}
	}
}

func TestDirectionsNoRouteIsNotFound(t *testing.T) {
	s := NewService(&fakeUpstream{resp: &googlemaps.DirectionsResponse{Status: googlemaps.StatusZeroResults}}, logger.New("development"))

	_, err := s.Directions(context.Background(), Request{Origin: "Berlin", Destination: "Honolulu", Mode: "walking"})
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "walking") || !strings.Contains(msg, "'Berlin'") || !strings.Contains(msg, "'Honolulu'") {
		t.Errorf("message should name mode and endpoints: %q", msg)
	}
}

func TestDirectionsUpstreamFailure(t *testing.T) {
	s := NewService(&fakeUpstream{err: errors.New("boom")}, logger.New("development"))

	_, err := s.Directions(context.Background(), Request{Origin: "A", Destination: "B"})
	if apperr.GetKind(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream kind, got %v", err)
	}
}
