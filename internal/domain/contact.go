package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a contact-form submission. Records are immutable once created:
// the ID and CreatedAt are assigned exactly once at insert time and the
// record is never updated or deleted afterwards.
type Contact struct {
	ID            uuid.UUID   `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Service       ServiceType `json:"service"`
	Message       string      `json:"message"`
	PrivacyAgreed bool        `json:"privacyAgreed"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// QuoteRequest is a quote-request form submission. Budget and Timeline are
// never empty on a stored record: absent values default to the
// "not-specified" sentinel at the validation boundary.
type QuoteRequest struct {
	ID             uuid.UUID       `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Company        *string         `json:"company,omitempty"`
	Service        ServiceType     `json:"service"`
	ProjectDetails string          `json:"projectDetails"`
	Budget         BudgetRange     `json:"budget"`
	Timeline       ProjectTimeline `json:"timeline"`
	CreatedAt      time.Time       `json:"createdAt"`
}
