package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/meridianeng/intake-backend/internal/domain"
	"github.com/meridianeng/intake-backend/internal/service/chat"
)

// chatService defines the minimal interface needed by ChatbotHandler.
type chatService interface {
	HandleTurn(ctx context.Context, input chat.TurnInput) (*chat.TurnResult, error)
	History(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error)
}

// ChatbotHandler serves the chatbot endpoints.
type ChatbotHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatbotHandler creates a ChatbotHandler.
func NewChatbotHandler(svc chatService, logger *slog.Logger) *ChatbotHandler {
	return &ChatbotHandler{svc: svc, log: logger.With("handler", "chatbot")}
}

type turnRequest struct {
	SessionID   string `json:"sessionId"`
	UserMessage string `json:"userMessage"`
}

type turnResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// Turn handles POST /api/chatbot. The full reply is carried in the HTTP
// response itself; there is no streaming.
func (h *ChatbotHandler) Turn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.HandleTurn(r.Context(), chat.TurnInput{
		SessionID:   req.SessionID,
		UserMessage: req.UserMessage,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, turnResponse{
		Success:  true,
		Response: result.Reply,
	})
}

// History handles GET /api/chatbot/{sessionId}, returning the conversation
// oldest first. An unknown session yields an empty array.
func (h *ChatbotHandler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionId")

	messages, err := h.svc.History(r.Context(), sessionID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if messages == nil {
		messages = []*domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}
