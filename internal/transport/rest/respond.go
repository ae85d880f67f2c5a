package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/meridianeng/intake-backend/internal/domain"
)

// validationResponse carries every violated constraint back to the client.
type validationResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps service errors onto HTTP responses: validation errors
// become a 400 with the structured violation list, everything else is
// logged and surfaced as a generic 500 with no internal detail leaked.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Error:   "validation failed",
			Details: vErr.Errors,
		})
		return
	}

	log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
