// File: replace.go
// Title: Comparison-Aware Replace
// Description: Replace with an explicit Comparison. Matches are found in
//              the original string only, left to right and without
//              overlap; substituted text is never searched again.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/textkit/core/errors"
)

// Replace returns s with every non-overlapping occurrence of oldValue,
// matched under mode, replaced by newValue.
//
//	Replace("aaa", "aa", "b", OrdinalExact) // "ba"
//
// If oldValue does not occur, s is returned unchanged. An empty oldValue is
// rejected with an INVALID_ARGUMENT error.
func Replace(s, oldValue, newValue string, mode Comparison) (string, error) {
	if oldValue == "" {
		return s, errors.StringxInvalidArgument("replace", "oldValue", oldValue, "non-empty string")
	}

	index, length := mode.index(s, oldValue, 0)
	if index == -1 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))

	previous := 0
	for index != -1 {
		b.WriteString(s[previous:index])
		b.WriteString(newValue)
		previous = index + length
		index, length = mode.index(s, oldValue, previous)
	}
	b.WriteString(s[previous:])

	return b.String(), nil
}

// MustReplace is Replace that panics on an invalid argument.
func MustReplace(s, oldValue, newValue string, mode Comparison) string {
	result, err := Replace(s, oldValue, newValue, mode)
	if err != nil {
		panic(err)
	}
	return result
}
