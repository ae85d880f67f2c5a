package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meridianeng/intake-backend/internal/domain"
)

// QuoteRepo is the in-memory quote-request collection.
type QuoteRepo struct {
	mu      sync.RWMutex
	records []*domain.QuoteRequest
}

// Create assigns the ID and creation timestamp, inserts the record, and
// returns the stored value. Optional fields are expected to be defaulted
// to their "not-specified" sentinel by the validation boundary already.
func (r *QuoteRepo) Create(ctx context.Context, q *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	stored := *q
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.records = append(r.records, &stored)
	r.mu.Unlock()

	return &stored, nil
}

// List returns all quote requests, newest first.
func (r *QuoteRepo) List(ctx context.Context) ([]*domain.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.QuoteRequest, len(r.records))
	for i, q := range r.records {
		out[len(r.records)-1-i] = q
	}
	return out, nil
}

func (r *QuoteRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
