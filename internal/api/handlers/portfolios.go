package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/portfolio-json-api/internal/api/request"
	"github.com/ndewijer/portfolio-json-api/internal/api/response"
	"github.com/ndewijer/portfolio-json-api/internal/apperrors"
	"github.com/ndewijer/portfolio-json-api/internal/service"
)

// Response messages for portfolio endpoints.
const (
	MsgPortfolioCreated    = "Portfolio created successfully"
	MsgPortfoliosRetrieved = "Portfolios retrieved successfully"
	MsgPortfolioDeleted    = "Portfolio deleted successfully"
	MsgPortfolioNotFound   = "Portfolio not found"
	MsgInvalidPayload      = "Invalid JSON payload"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// CreatePortfolio handles POST requests to store a new portfolio.
// The body may be any JSON object; id, createdAt and updatedAt are assigned
// by the server.
//
// Endpoint: POST /api/portfolios
// Response: 201 Created with the stored record
// Error: 400 Bad Request if the body is not a JSON object
// Error: 500 Internal Server Error if the data file cannot be written
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	fields, err := request.DecodePortfolioPayload(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, MsgInvalidPayload, err.Error())
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(fields)
	if err != nil {
		log.Printf("Failed to create portfolio: %v", err)
		response.RespondError(w, http.StatusInternalServerError, response.MsgInternalServerError, err.Error())
		return
	}

	response.RespondSuccess(w, http.StatusCreated, MsgPortfolioCreated, portfolio)
}

// Portfolios handles GET requests for the full collection.
//
// Endpoint: GET /api/portfolios
// Response: 200 OK with every record and the count
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, _ *http.Request) {
	portfolios := h.portfolioService.GetAllPortfolios()

	response.RespondList(w, MsgPortfoliosRetrieved, portfolios, len(portfolios))
}

// DeletePortfolio handles DELETE requests for a single portfolio.
//
// Endpoint: DELETE /api/portfolios/{id}
// Response: 200 OK with the removed record
// Error: 404 Not Found if no record has the id
// Error: 500 Internal Server Error if the data file cannot be written
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	portfolio, err := h.portfolioService.DeletePortfolio(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPortfolioNotFound) {
			response.RespondError(w, http.StatusNotFound, MsgPortfolioNotFound, "")
			return
		}
		log.Printf("Failed to delete portfolio %s: %v", id, err)
		response.RespondError(w, http.StatusInternalServerError, response.MsgInternalServerError, err.Error())
		return
	}

	response.RespondSuccess(w, http.StatusOK, MsgPortfolioDeleted, portfolio)
}
