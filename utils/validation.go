// utils/validation.go
package utils

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks that a string looks like an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ParseAmount converts a form value to a finite float64. Empty or
// non-numeric input is rejected; the sign is not checked, a negative amount
// is a valid compensating entry.
func ParseAmount(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errors.New("amount is required")
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errors.New("amount must be a number")
	}
	return n, nil
}
