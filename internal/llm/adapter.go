// Package llm adapts the generic {function_name, parameters} envelope used
// by the LLM orchestration layer into in-process calls on the search and
// directions services. Dispatching in-process (instead of re-invoking the
// HTTP handlers) keeps auth and rate limiting in the shared middleware
// chain with no header duplication.
package llm

import (
	"context"
	"encoding/json"

	"maps_gateway/internal/directions"
	"maps_gateway/internal/places"
	"maps_gateway/platform/apperr"
	"maps_gateway/platform/logger"
)

// Function names accepted by the adapter.
const (
	FuncSearchPlaces  = "search_places"
	FuncGetDirections = "get_directions"
)

// Call is the generic function-call envelope.
type Call struct {
	FunctionName string          `json:"function_name" binding:"required"`
	Parameters   json.RawMessage `json:"parameters"`
}

// PlaceSearcher runs a place search for the adapter.
type PlaceSearcher interface {
	Search(ctx context.Context, req places.SearchRequest) (*places.SearchResponse, error)
}

// DirectionsFinder runs a directions query for the adapter.
type DirectionsFinder interface {
	Directions(ctx context.Context, req directions.Request) (*directions.Response, error)
}

// Adapter dispatches function calls by name.
type Adapter struct {
	searcher PlaceSearcher
	finder   DirectionsFinder
	log      *logger.Logger
}

// NewAdapter creates the function-call adapter.
func NewAdapter(searcher PlaceSearcher, finder DirectionsFinder, log *logger.Logger) *Adapter {
	return &Adapter{
		searcher: searcher,
		finder:   finder,
		log:      log,
	}
}

// Dispatch routes a call to the matching service. The services validate
// their own required parameters, so missing fields map to the same 400s
// the direct endpoints produce. An unknown name is a bad request.
func (a *Adapter) Dispatch(ctx context.Context, call Call) (interface{}, error) {
	params := call.Parameters
	if len(params) == 0 {
		params = json.RawMessage("{}")
	}

	switch call.FunctionName {
	case FuncSearchPlaces:
		var req places.SearchRequest
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, apperr.BadRequest("Invalid parameters for search_places")
		}
		return a.searcher.Search(ctx, req)

	case FuncGetDirections:
		var req directions.Request
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, apperr.BadRequest("Invalid parameters for get_directions")
		}
		return a.finder.Directions(ctx, req)

	default:
		a.log.Warn("unknown function call", "function_name", call.FunctionName)
		return nil, apperr.BadRequest("Unknown function name")
	}
}
