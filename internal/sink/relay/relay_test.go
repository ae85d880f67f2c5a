package relay

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianeng/intake-backend/internal/config"
	"github.com/meridianeng/intake-backend/internal/domain"
)

func newTestSink(t *testing.T, url string) *Sink {
	t.Helper()
	return New(config.SinkConfig{
		Mode:         config.SinkModeRelay,
		RelayURL:     url,
		RelayTimeout: 2 * time.Second,
	}, slog.Default())
}

func TestContactSink_ForwardsSubmission(t *testing.T) {
	t.Parallel()

	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = body
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := newTestSink(t, srv.URL)

	stored, err := sink.Contacts().Create(t.Context(), &domain.Contact{
		FirstName:     "Ada",
		LastName:      "Byron",
		Email:         "ada@example.com",
		Phone:         "+1555000111",
		Service:       domain.ServiceAutomation,
		Message:       "Need a PLC retrofit for our packaging line.",
		PrivacyAgreed: true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())

	var env struct {
		Form       string         `json:"form"`
		Submission domain.Contact `json:"submission"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &env))
	assert.Equal(t, "contact", env.Form)
	assert.Equal(t, stored.ID, env.Submission.ID)
	assert.Equal(t, "Ada", env.Submission.FirstName)
}

func TestQuoteSink_ForwardsSubmission(t *testing.T) {
	t.Parallel()

	var gotForm string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env struct {
			Form string `json:"form"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		gotForm = env.Form
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink := newTestSink(t, srv.URL)

	_, err := sink.Quotes().Create(t.Context(), &domain.QuoteRequest{
		FirstName: "Grace",
		Service:   domain.ServiceSolar,
		Budget:    domain.BudgetNotSpecified,
		Timeline:  domain.TimelineNotSpecified,
	})
	require.NoError(t, err)
	assert.Equal(t, "quote-request", gotForm)
}

func TestSink_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := newTestSink(t, srv.URL)

	_, err := sink.Contacts().Create(t.Context(), &domain.Contact{FirstName: "Retry"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSink_ClientErrorFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	sink := newTestSink(t, srv.URL)

	_, err := sink.Contacts().Create(t.Context(), &domain.Contact{FirstName: "Nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 422")
}
