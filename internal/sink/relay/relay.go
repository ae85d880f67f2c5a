// Package relay forwards form submissions to a third-party form endpoint
// instead of the in-process record store. It implements the same sink
// contract as the store repositories, so the intake services behave
// identically whichever sink is wired in.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/meridianeng/intake-backend/internal/config"
	"github.com/meridianeng/intake-backend/internal/domain"
)

// Sink posts submissions to the configured relay URL.
type Sink struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Sink from the sink configuration.
func New(cfg config.SinkConfig, logger *slog.Logger) *Sink {
	return &Sink{
		url:        cfg.RelayURL,
		httpClient: &http.Client{Timeout: cfg.RelayTimeout},
		log:        logger.With("adapter", "relay"),
	}
}

// Contacts returns the contact-form view of the sink.
func (s *Sink) Contacts() *ContactSink { return &ContactSink{sink: s} }

// Quotes returns the quote-form view of the sink.
func (s *Sink) Quotes() *QuoteSink { return &QuoteSink{sink: s} }

// envelope is the relay wire format: the form name plus the submission.
type envelope struct {
	Form       string `json:"form"`
	Submission any    `json:"submission"`
}

// post sends one submission, retrying once on 5xx or network errors.
func (s *Sink) post(ctx context.Context, form string, submission any) error {
	body, err := json.Marshal(envelope{Form: form, Submission: submission})
	if err != nil {
		return fmt.Errorf("relay: encode %s submission: %w", form, err)
	}

	resp, err := s.doWithRetry(ctx, form, body)
	if err != nil {
		return fmt.Errorf("relay: post %s submission: %w", form, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay: unexpected status %d for %s submission", resp.StatusCode, form)
	}

	s.log.InfoContext(ctx, "submission relayed",
		slog.String("form", form),
		slog.Int("status", resp.StatusCode),
	)
	return nil
}

func (s *Sink) doWithRetry(ctx context.Context, form string, body []byte) (*http.Response, error) {
	resp, err := s.do(ctx, body)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, nil
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	s.log.WarnContext(ctx, "relay retry", slog.String("form", form), slog.String("reason", reason))

	time.Sleep(500 * time.Millisecond)

	return s.do(ctx, body)
}

func (s *Sink) do(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return s.httpClient.Do(req)
}

// ContactSink forwards contact submissions. The ID and creation timestamp
// are assigned locally so the caller gets the same echo contract as with
// the store sink.
type ContactSink struct {
	sink *Sink
}

// Create forwards the submission and returns it with ID and timestamp set.
func (c *ContactSink) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	stored := *contact
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	if err := c.sink.post(ctx, "contact", stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// QuoteSink forwards quote-request submissions.
type QuoteSink struct {
	sink *Sink
}

// Create forwards the submission and returns it with ID and timestamp set.
func (q *QuoteSink) Create(ctx context.Context, quote *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	stored := *quote
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	if err := q.sink.post(ctx, "quote-request", stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
