// File: stringx.go
// Title: Core String Helpers
// Description: Emptiness and blankness checks, first-non-empty selection
//              and character removal helpers used by the rest of the
//              package and by callers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains at least one non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonEmpty returns the first non-empty string, or "" if there is none.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first string with non-whitespace content, or "".
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// FromDefault returns s if it is not empty, otherwise defaultValue.
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

// FromBlankDefault returns s if it is not blank, otherwise defaultValue.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// AppendIf returns s+suffix when condition holds and s otherwise.
func AppendIf(s string, condition bool, suffix string) string {
	if condition {
		return s + suffix
	}
	return s
}

// RemoveCharacters removes every occurrence of every rune in chars from s.
func RemoveCharacters(s, chars string) string {
	if chars == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// RemoveWhitespace removes spaces, tabs, carriage returns and line feeds.
// Other Unicode whitespace is kept.
func RemoveWhitespace(s string) string {
	return RemoveCharacters(s, " \r\n\t")
}
