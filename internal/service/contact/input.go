package contact

import (
	"strings"

	"github.com/meridianeng/intake-backend/internal/domain"
)

// SubmitInput holds the parameters for a contact submission.
type SubmitInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Service       domain.ServiceType
	Message       string
	PrivacyAgreed bool
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if len(strings.TrimSpace(i.FirstName)) < 2 {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required, min 2 characters"})
	}
	if len(strings.TrimSpace(i.LastName)) < 2 {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "required, min 2 characters"})
	}

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !domain.IsValidEmail(email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if len(strings.TrimSpace(i.Phone)) < 6 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required, min 6 characters"})
	}

	if i.Service == "" {
		errs = append(errs, domain.FieldError{Field: "service", Message: "required"})
	} else if !i.Service.IsValid() {
		errs = append(errs, domain.FieldError{Field: "service", Message: "unknown service type"})
	}

	if len(strings.TrimSpace(i.Message)) < 10 {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required, min 10 characters"})
	}

	if !i.PrivacyAgreed {
		errs = append(errs, domain.FieldError{Field: "privacyAgreed", Message: "must be accepted"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
