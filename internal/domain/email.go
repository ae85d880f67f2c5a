package domain

import "regexp"

// emailRx is intentionally loose: one @ with something on both sides and a
// dot in the host part. The goal is catching typos at the form boundary,
// not RFC 5322 compliance.
var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRx.MatchString(s)
}
