// Package quote implements the quote-request intake flow.
package quote

import (
	"context"
	"log/slog"
	"strings"

	"github.com/meridianeng/intake-backend/internal/domain"
)

// quoteSink receives validated submissions (store or third-party relay).
type quoteSink interface {
	Create(ctx context.Context, q *domain.QuoteRequest) (*domain.QuoteRequest, error)
}

// quoteLister reads stored submissions.
type quoteLister interface {
	List(ctx context.Context) ([]*domain.QuoteRequest, error)
}

// Service provides quote-request intake operations.
type Service struct {
	sink   quoteSink
	lister quoteLister
	log    *slog.Logger
}

// NewService creates a quote Service.
func NewService(log *slog.Logger, sink quoteSink, lister quoteLister) *Service {
	return &Service{
		sink:   sink,
		lister: lister,
		log:    log.With("service", "quote"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
