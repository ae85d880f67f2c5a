// Package contact implements the contact-form intake flow: validate the
// submission, write it through the configured sink, echo the stored record.
package contact

import (
	"context"
	"log/slog"

	"github.com/meridianeng/intake-backend/internal/domain"
)

// contactSink receives validated submissions. The in-memory store is the
// default implementation; the relay sink forwards to a third-party form
// endpoint instead.
type contactSink interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
}

// contactLister reads stored submissions. Always backed by the store.
type contactLister interface {
	List(ctx context.Context) ([]*domain.Contact, error)
}

// Service provides contact intake operations.
type Service struct {
	sink   contactSink
	lister contactLister
	log    *slog.Logger
}

// NewService creates a contact Service.
func NewService(log *slog.Logger, sink contactSink, lister contactLister) *Service {
	return &Service{
		sink:   sink,
		lister: lister,
		log:    log.With("service", "contact"),
	}
}
