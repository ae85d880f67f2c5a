package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meridianeng/intake-backend/internal/domain"
)

// Submit validates the submission and writes it through the sink.
// The returned record carries the assigned ID and creation timestamp.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.sink.Create(ctx, &domain.Contact{
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		Service:       input.Service,
		Message:       strings.TrimSpace(input.Message),
		PrivacyAgreed: input.PrivacyAgreed,
	})
	if err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact submitted",
		slog.String("contact_id", stored.ID.String()),
		slog.String("service", stored.Service.String()),
	)

	return stored, nil
}

// List returns all stored contacts, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}
