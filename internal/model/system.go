package model

// EndpointInfo describes a single route in the API description.
type EndpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// APIInfo is the static description served from the root route.
type APIInfo struct {
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	Endpoints []EndpointInfo `json:"endpoints"`
}
