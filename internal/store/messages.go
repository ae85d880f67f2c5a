package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meridianeng/intake-backend/internal/domain"
)

// MessageRepo is the in-memory chat-message collection.
type MessageRepo struct {
	mu      sync.RWMutex
	records []*domain.ChatMessage
}

// Create assigns the ID and creation timestamp, inserts the record, and
// returns the stored value. One record per chat turn.
func (r *MessageRepo) Create(ctx context.Context, m *domain.ChatMessage) (*domain.ChatMessage, error) {
	stored := *m
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.records = append(r.records, &stored)
	r.mu.Unlock()

	return &stored, nil
}

// ListBySession returns the messages whose SessionID matches exactly,
// oldest first (conversation order).
func (r *MessageRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ChatMessage
	for _, m := range r.records {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MessageRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
