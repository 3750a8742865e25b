package handlers

import (
	"net/http"

	"github.com/ndewijer/portfolio-json-api/internal/api/response"
	"github.com/ndewijer/portfolio-json-api/internal/model"
	"github.com/ndewijer/portfolio-json-api/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// IndexResponse represents the root description response
type IndexResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message"`
	Version   string               `json:"version"`
	Endpoints []model.EndpointInfo `json:"endpoints"`
}

// Index describes the API and its endpoints.
//
// Endpoint: GET /
// Response: 200 OK with IndexResponse
func (h *SystemHandler) Index(w http.ResponseWriter, _ *http.Request) {
	info := h.systemService.APIInfo()

	response.RespondJSON(w, http.StatusOK, IndexResponse{
		Success:   true,
		Message:   info.Name,
		Version:   info.Version,
		Endpoints: info.Endpoints,
	})
}

// NotFound answers every unmatched route, including method mismatches on
// known paths.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	response.RespondError(w, http.StatusNotFound, response.MsgEndpointNotFound, "")
}
