package rest

import "net/http"

// NewRouter wires the REST handlers onto a ServeMux using method patterns.
func NewRouter(contacts *ContactHandler, quotes *QuoteHandler, chatbot *ChatbotHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/contacts", contacts.Submit)
	mux.HandleFunc("GET /api/contacts", contacts.List)

	mux.HandleFunc("POST /api/quote-requests", quotes.Submit)
	mux.HandleFunc("GET /api/quote-requests", quotes.List)

	mux.HandleFunc("POST /api/chatbot", chatbot.Turn)
	mux.HandleFunc("GET /api/chatbot/{sessionId}", chatbot.History)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)

	return mux
}
