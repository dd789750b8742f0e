// Package gate collects and submits the email address that unlocks a
// computed personality result.
package gate

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmailRequired = errors.New("Please enter your email address.")
	ErrEmailInvalid  = errors.New("Please enter a valid email address.")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks addr and returns a user-facing sentinel error
// when it is empty or malformed. Surrounding whitespace is ignored.
func ValidateEmail(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(addr) {
		return ErrEmailInvalid
	}
	return nil
}
