package llm

import "google.golang.org/genai"

// Declarations returns the function declarations the orchestration layer
// registers with its model. The schemas mirror the adapter's parameter
// structs; no model is invoked here.
func Declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        FuncSearchPlaces,
			Description: "Search for places such as restaurants, shops or services, optionally biased to a location.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: "Search query, e.g. \"coffee shops\".",
					},
					"location": {
						Type:        genai.TypeString,
						Description: "Location bias, e.g. \"San Francisco, CA\" or \"37.77,-122.42\".",
					},
					"type": {
						Type:        genai.TypeString,
						Description: "Place type filter, e.g. \"restaurant\" or \"gas_station\".",
					},
					"radius": {
						Type:        genai.TypeInteger,
						Description: "Search radius in meters (default 2000).",
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        FuncGetDirections,
			Description: "Get directions between two locations.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"origin": {
						Type:        genai.TypeString,
						Description: "Starting location: address, landmark or coordinates.",
					},
					"destination": {
						Type:        genai.TypeString,
						Description: "Destination location: address, landmark or coordinates.",
					},
					"mode": {
						Type:        genai.TypeString,
						Description: "Travel mode: driving, walking, transit or bicycling.",
					},
				},
				Required: []string{"origin", "destination"},
			},
		},
	}
}
