package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidEmail is returned when an email address fails format validation.
var ErrInvalidEmail = errors.New("invalid email format")

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a normalized (trimmed, lowercased) email address.
type Email struct {
	value string
}

// NewEmail normalizes and validates an email address.
func NewEmail(email string) (Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(email))
	if !emailPattern.MatchString(normalized) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }
