package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meridianeng/intake-backend/internal/config"
)

func corsConfig(origins string) config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: "GET,POST,OPTIONS",
		AllowedHeaders: "Content-Type",
		MaxAge:         86400,
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	wrapped := CORS(corsConfig("https://meridianengineering.com"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://meridianengineering.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://meridianengineering.com" {
		t.Errorf("expected origin to be allowed, got %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	wrapped := CORS(corsConfig("https://meridianengineering.com"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}

func TestCORS_Wildcard(t *testing.T) {
	wrapped := CORS(corsConfig("*"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anything.example")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anything.example" {
		t.Errorf("expected wildcard to allow origin, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handlerCalled := false
	wrapped := CORS(corsConfig("*"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/contacts", nil)
	req.Header.Set("Origin", "https://meridianengineering.com")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if handlerCalled {
		t.Error("expected preflight to short-circuit the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,OPTIONS" {
		t.Errorf("expected allow-methods header, got %q", got)
	}
}
