// Package chat implements the chatbot turn flow: validate the turn, compute
// the canned reply, persist one record per turn, return the reply.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meridianeng/intake-backend/internal/domain"
	"github.com/meridianeng/intake-backend/internal/service/chat/responder"
)

// messageRepo persists and retrieves chat turns.
type messageRepo interface {
	Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error)
}

// Service provides chatbot operations.
type Service struct {
	messages messageRepo
	log      *slog.Logger
}

// NewService creates a chat Service.
func NewService(log *slog.Logger, messages messageRepo) *Service {
	return &Service{
		messages: messages,
		log:      log.With("service", "chat"),
	}
}

// TurnInput holds one chatbot turn. SessionID is client-generated and only
// groups turns for later retrieval; it does not influence the reply.
type TurnInput struct {
	SessionID   string
	UserMessage string
}

// TurnResult is the outcome of a processed turn.
type TurnResult struct {
	Reply   string
	Message *domain.ChatMessage
}

// HandleTurn processes one chatbot turn. The required fields are checked
// directly here rather than through the form-schema mechanism: a missing
// session ID or message rejects the turn before anything is computed.
// The reply depends only on the current message text, never on prior turns.
func (s *Service) HandleTurn(ctx context.Context, input TurnInput) (*TurnResult, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		return nil, domain.NewValidationError("sessionId", "required")
	}
	userMessage := strings.TrimSpace(input.UserMessage)
	if userMessage == "" {
		return nil, domain.NewValidationError("userMessage", "required")
	}

	reply := responder.Reply(userMessage)

	stored, err := s.messages.Create(ctx, &domain.ChatMessage{
		SessionID:   sessionID,
		UserMessage: userMessage,
		BotResponse: reply,
	})
	if err != nil {
		return nil, fmt.Errorf("store chat turn: %w", err)
	}

	s.log.InfoContext(ctx, "chat turn handled",
		slog.String("session_id", sessionID),
		slog.String("message_id", stored.ID.String()),
	)

	return &TurnResult{Reply: reply, Message: stored}, nil
}

// History returns the conversation for a session, oldest first. An unknown
// session yields an empty slice, not an error.
func (s *Service) History(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	messages, err := s.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session messages: %w", err)
	}
	return messages, nil
}
