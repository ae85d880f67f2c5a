package domain

import "testing"

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"", false},
		{"missing@tld", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
		{"user@", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
