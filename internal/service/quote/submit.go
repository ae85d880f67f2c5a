package quote

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/meridianeng/intake-backend/internal/domain"
)

// Submit validates the request and writes it through the sink. Absent
// budget/timeline buckets are stored as the explicit "not-specified"
// sentinel, never as empty values.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.QuoteRequest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	budget := input.Budget
	if budget == "" {
		budget = domain.BudgetNotSpecified
	}
	timeline := input.Timeline
	if timeline == "" {
		timeline = domain.TimelineNotSpecified
	}

	stored, err := s.sink.Create(ctx, &domain.QuoteRequest{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Company:        trimOrNil(input.Company),
		Service:        input.Service,
		ProjectDetails: strings.TrimSpace(input.ProjectDetails),
		Budget:         budget,
		Timeline:       timeline,
	})
	if err != nil {
		return nil, fmt.Errorf("submit quote request: %w", err)
	}

	s.log.InfoContext(ctx, "quote request submitted",
		slog.String("quote_id", stored.ID.String()),
		slog.String("service", stored.Service.String()),
		slog.String("budget", stored.Budget.String()),
	)

	return stored, nil
}

// List returns all stored quote requests, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.QuoteRequest, error) {
	quotes, err := s.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quote requests: %w", err)
	}
	return quotes, nil
}
