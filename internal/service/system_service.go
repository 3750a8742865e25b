package service

import (
	"github.com/ndewijer/portfolio-json-api/internal/model"
	"github.com/ndewijer/portfolio-json-api/internal/version"
)

// SystemService handles system-related operations
type SystemService struct{}

// NewSystemService creates a new SystemService
func NewSystemService() *SystemService {
	return &SystemService{}
}

// APIInfo describes the service and the routes it serves.
func (s *SystemService) APIInfo() model.APIInfo {
	return model.APIInfo{
		Name:    "Portfolio API",
		Version: version.Version,
		Endpoints: []model.EndpointInfo{
			{Method: "POST", Path: "/api/portfolios", Description: "Create a new portfolio"},
			{Method: "GET", Path: "/api/portfolios", Description: "Get all portfolios"},
			{Method: "DELETE", Path: "/api/portfolios/:id", Description: "Delete a portfolio by ID"},
		},
	}
}
