package directions

import (
	"net/http"

	apphttp "maps_gateway/internal/http"
	"maps_gateway/platform/httpkit"
	"maps_gateway/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module wires the directions HTTP route.
type Module struct {
	service *Service
}

// NewModule assembles the directions module.
func NewModule(upstream Upstream, log *logger.Logger) *Module {
	return &Module{service: NewService(upstream, log)}
}

// Service exposes the directions service for in-process callers (the
// function-call adapter).
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) Name() string {
	return "directions"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/directions", m.handleDirections)
}

func (m *Module) handleDirections(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation_error", "Missing required fields: origin and destination")
		return
	}

	result, err := m.service.Directions(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

var _ apphttp.Module = (*Module)(nil)
