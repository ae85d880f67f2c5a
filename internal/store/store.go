// Package store holds the in-process record store backing the intake API.
//
// All state is volatile: restarting the process discards every record.
// Collections are guarded by mutexes because the HTTP server runs each
// request on its own goroutine; within one process, creation order is
// exactly the call order.
package store

import "context"

// Store owns the three record collections for the life of the process.
// Construct it once at startup and inject it into the services.
type Store struct {
	contacts *ContactRepo
	quotes   *QuoteRepo
	messages *MessageRepo
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		contacts: &ContactRepo{},
		quotes:   &QuoteRepo{},
		messages: &MessageRepo{},
	}
}

// Contacts returns the contact collection.
func (s *Store) Contacts() *ContactRepo { return s.contacts }

// Quotes returns the quote-request collection.
func (s *Store) Quotes() *QuoteRepo { return s.quotes }

// Messages returns the chat-message collection.
func (s *Store) Messages() *MessageRepo { return s.messages }

// Stats holds per-collection record counts, reported by the health endpoint.
type Stats struct {
	Contacts int `json:"contacts"`
	Quotes   int `json:"quotes"`
	Messages int `json:"messages"`
}

// Stats returns current record counts.
func (s *Store) Stats(ctx context.Context) Stats {
	return Stats{
		Contacts: s.contacts.count(),
		Quotes:   s.quotes.count(),
		Messages: s.messages.count(),
	}
}
