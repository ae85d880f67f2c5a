package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/meridianeng/intake-backend/internal/domain"
)

// ContactRepo is the in-memory contact collection.
type ContactRepo struct {
	mu      sync.RWMutex
	records []*domain.Contact
}

// Create assigns the ID and creation timestamp, inserts the record, and
// returns the stored value. The ID and CreatedAt on the input are ignored.
// It never fails for well-formed input; the error return exists so the
// repo satisfies the service-side sink interface.
func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	stored := *c
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.records = append(r.records, &stored)
	r.mu.Unlock()

	return &stored, nil
}

// List returns all contacts, newest first. Repeatable: without an
// intervening Create, two calls return identical sequences.
func (r *ContactRepo) List(ctx context.Context) ([]*domain.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Contact, len(r.records))
	for i, c := range r.records {
		out[len(r.records)-1-i] = c
	}
	return out, nil
}

func (r *ContactRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
