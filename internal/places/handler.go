package places

import (
	"net/http"

	"maps_gateway/platform/apperr"
	"maps_gateway/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the place endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates the places handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// SearchPlaces handles POST /search-places.
func (h *Handler) SearchPlaces(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation_error", "Missing required field: query")
		return
	}

	result, err := h.svc.Search(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// SearchPublic handles GET /api/places/search?query=... (open variant).
// Zero results are an empty list here, not a 404.
func (h *Handler) SearchPublic(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		httpkit.Error(c, http.StatusBadRequest, "validation_error", "Missing required parameter: query")
		return
	}

	result, err := h.svc.Search(c.Request.Context(), SearchRequest{
		Query:    query,
		Location: c.Query("location"),
		Type:     c.Query("type"),
	})
	if apperr.Is(err, apperr.KindNotFound) {
		httpkit.OK(c, gin.H{"results": []Place{}, "count": 0})
		return
	}
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"results": result.Places, "count": len(result.Places)})
}

// Details handles GET /api/places/details?place_id=... (open variant),
// returning the provider's raw detail object.
func (h *Handler) Details(c *gin.Context) {
	placeID := c.Query("place_id")

	result, err := h.svc.Details(c.Request.Context(), placeID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"result": result})
}

// GeocodePublic handles GET /api/places/geocode?address=... (open variant).
// This is the strict path: geocoding failures are hard errors.
func (h *Handler) GeocodePublic(c *gin.Context) {
	result, err := h.svc.Geocode(c.Request.Context(), c.Query("address"))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
