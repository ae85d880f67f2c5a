package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meridianeng/intake-backend/internal/domain"
	"github.com/meridianeng/intake-backend/internal/service/quote"
)

// quoteService defines the minimal interface needed by QuoteHandler.
type quoteService interface {
	Submit(ctx context.Context, input quote.SubmitInput) (*domain.QuoteRequest, error)
	List(ctx context.Context) ([]*domain.QuoteRequest, error)
}

// QuoteHandler serves the quote-request endpoints.
type QuoteHandler struct {
	svc quoteService
	log *slog.Logger
}

// NewQuoteHandler creates a QuoteHandler.
func NewQuoteHandler(svc quoteService, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{svc: svc, log: logger.With("handler", "quote")}
}

type quoteRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Company        *string `json:"company,omitempty"`
	Service        string  `json:"service"`
	ProjectDetails string  `json:"projectDetails"`
	Budget         string  `json:"budget,omitempty"`
	Timeline       string  `json:"timeline,omitempty"`
}

type quoteResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Quote   *domain.QuoteRequest `json:"quote"`
}

// Submit handles POST /api/quote-requests.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.svc.Submit(r.Context(), quote.SubmitInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		Service:        domain.ServiceType(req.Service),
		ProjectDetails: req.ProjectDetails,
		Budget:         domain.BudgetRange(req.Budget),
		Timeline:       domain.ProjectTimeline(req.Timeline),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, quoteResponse{
		Success: true,
		Message: "Thank you! Our engineers will review your project and contact you within two business days.",
		Quote:   stored,
	})
}

// List handles GET /api/quote-requests.
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if quotes == nil {
		quotes = []*domain.QuoteRequest{}
	}
	writeJSON(w, http.StatusOK, quotes)
}
