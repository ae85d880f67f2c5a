package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one chatbot turn: the visitor's line and the computed bot
// reply, stored together. SessionID is an opaque client-generated string
// that groups turns into a conversation; it carries no other meaning.
type ChatMessage struct {
	ID          uuid.UUID `json:"id"`
	SessionID   string    `json:"sessionId"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	CreatedAt   time.Time `json:"createdAt"`
}
