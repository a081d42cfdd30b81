package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength       = 200
	maxNameLength        = 200
	maxDescriptionLength = 1000
	maxContentLength     = 10000
)

// NormalizeNaturalKey trims surrounding whitespace and lowercases s.
// Two titles (or names) collide when their normalized forms are equal.
func NormalizeNaturalKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateRequired(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return validateOptional(field, value, maxLen)
}

func validateOptional(field, value string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters", maxLen),
		}
	}
	return nil
}
