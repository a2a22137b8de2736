package llm

import (
	"net/http"

	apphttp "maps_gateway/internal/http"
	"maps_gateway/platform/httpkit"
	"maps_gateway/platform/logger"

	"github.com/gin-gonic/gin"
)

// Module wires the function-call adapter HTTP routes.
type Module struct {
	adapter *Adapter
}

// NewModule assembles the llm module.
func NewModule(searcher PlaceSearcher, finder DirectionsFinder, log *logger.Logger) *Module {
	return &Module{adapter: NewAdapter(searcher, finder, log)}
}

func (m *Module) Name() string {
	return "llm"
}

// RegisterRoutes mounts the adapter inside the protected group, so the
// bearer check and rate limit apply exactly as on the direct endpoints.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.POST("/llm-function", m.handleCall)
	ctx.Protected.GET("/llm-function", m.handleDeclarations)
}

func (m *Module) handleCall(c *gin.Context) {
	var call Call
	if err := c.ShouldBindJSON(&call); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation_error", "Missing required field: function_name")
		return
	}

	result, err := m.adapter.Dispatch(c.Request.Context(), call)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

func (m *Module) handleDeclarations(c *gin.Context) {
	httpkit.OK(c, gin.H{"functions": Declarations()})
}

var _ apphttp.Module = (*Module)(nil)
