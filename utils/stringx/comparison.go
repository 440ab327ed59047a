// File: comparison.go
// Title: Explicit Comparison Modes
// Description: Comparison selects between byte-exact and case-insensitive
//              ordinal matching. Every search in this package takes the
//              mode explicitly; there is no ambient or locale default.
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
	"unicode/utf8"

	"github.com/charlievieth/strcase"

	"github.com/msto63/textkit/core/errors"
)

// Comparison is the matching strategy used by searches and Replace.
type Comparison int

const (
	// OrdinalExact compares the raw bytes of the UTF-8 encoding.
	OrdinalExact Comparison = iota

	// OrdinalCaseInsensitive compares runes under simple Unicode case
	// folding, independent of any locale.
	OrdinalCaseInsensitive
)

// String returns "ordinal" or "ordinal-ignore-case"
func (c Comparison) String() string {
	switch c {
	case OrdinalExact:
		return "ordinal"
	case OrdinalCaseInsensitive:
		return "ordinal-ignore-case"
	default:
		return "unknown"
	}
}

// ParseComparison parses the names produced by Comparison.String. It also
// accepts "exact" and "ignore-case".
func ParseComparison(s string) (Comparison, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ordinal", "exact", "ordinal-exact":
		return OrdinalExact, nil
	case "ordinal-ignore-case", "ignore-case", "ordinal-case-insensitive":
		return OrdinalCaseInsensitive, nil
	default:
		return OrdinalExact, errors.StringxInvalidInput("parse_comparison", s)
	}
}

// hasPrefix reports whether s starts with prefix under mode c.
func (c Comparison) hasPrefix(s, prefix string) bool {
	if c == OrdinalCaseInsensitive {
		return strcase.HasPrefix(s, prefix)
	}
	return strings.HasPrefix(s, prefix)
}

// hasSuffix reports whether s ends with suffix under mode c.
func (c Comparison) hasSuffix(s, suffix string) bool {
	if c == OrdinalCaseInsensitive {
		return strcase.HasSuffix(s, suffix)
	}
	return strings.HasSuffix(s, suffix)
}

// index returns the byte offset of the first match of substr in s at or
// after from, together with the byte length of the matched text in s.
// The length can differ from len(substr) when case folding pairs runes of
// different encoded widths. A failed search returns (-1, 0).
func (c Comparison) index(s, substr string, from int) (int, int) {
	if substr == "" || from < 0 || from > len(s) {
		return -1, 0
	}

	if c != OrdinalCaseInsensitive {
		i := strings.Index(s[from:], substr)
		if i < 0 {
			return -1, 0
		}
		return from + i, len(substr)
	}

	i := strcase.Index(s[from:], substr)
	if i < 0 {
		return -1, 0
	}
	start := from + i
	return start, foldedMatchLen(s[start:], substr)
}

// lastIndex returns the byte offset of the last match of substr in s, or -1.
func (c Comparison) lastIndex(s, substr string) int {
	if substr == "" {
		return -1
	}
	if c == OrdinalCaseInsensitive {
		return strcase.LastIndex(s, substr)
	}
	return strings.LastIndex(s, substr)
}

// foldedMatchLen returns how many bytes at the start of s are covered by a
// case-insensitive match of substr. Simple folding maps one rune to one
// rune, so the match spans as many runes as substr has.
func foldedMatchLen(s, substr string) int {
	n := utf8.RuneCountInString(substr)
	size := 0
	for i := 0; i < n && size < len(s); i++ {
		_, w := utf8.DecodeRuneInString(s[size:])
		size += w
	}
	return size
}
