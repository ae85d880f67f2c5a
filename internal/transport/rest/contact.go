package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meridianeng/intake-backend/internal/domain"
	"github.com/meridianeng/intake-backend/internal/service/contact"
)

// contactService defines the minimal interface needed by ContactHandler.
type contactService interface {
	Submit(ctx context.Context, input contact.SubmitInput) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
}

// ContactHandler serves the contact-form endpoints.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type contactRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	Message       string `json:"message"`
	PrivacyAgreed bool   `json:"privacyAgreed"`
}

type contactResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Contact *domain.Contact `json:"contact"`
}

// Submit handles POST /api/contacts.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := h.svc.Submit(r.Context(), contact.SubmitInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       domain.ServiceType(req.Service),
		Message:       req.Message,
		PrivacyAgreed: req.PrivacyAgreed,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, contactResponse{
		Success: true,
		Message: "Thank you for your message! We will get back to you within one business day.",
		Contact: stored,
	})
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if contacts == nil {
		contacts = []*domain.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}
