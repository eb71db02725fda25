// Package sanitizer normalizes free-text input before validation and
// storage. All functions are idempotent and handle invalid input by
// returning the empty string rather than an error.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims leading/trailing whitespace and collapses every
// internal whitespace run to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

// NormalizeName normalizes a person's display name.
func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeCompany normalizes an organization name.
func NormalizeCompany(company string) string {
	return TrimAndNormalize(company)
}
