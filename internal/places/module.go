package places

import (
	apphttp "maps_gateway/internal/http"
	"maps_gateway/platform/logger"
)

// Module wires the place search HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

// NewModule assembles the places module.
func NewModule(upstream Upstream, geocoder LocationResolver, log *logger.Logger) *Module {
	svc := NewService(upstream, geocoder, log)
	return &Module{
		service: svc,
		handler: NewHandler(svc),
	}
}

// Service exposes the places service for in-process callers (the
// function-call adapter).
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) Name() string {
	return "places"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/search-places", m.handler.SearchPlaces)

	open := ctx.Public.Group("/places")
	open.GET("/search", m.handler.SearchPublic)
	open.GET("/details", m.handler.Details)
	open.GET("/geocode", m.handler.GeocodePublic)
}

var _ apphttp.Module = (*Module)(nil)
