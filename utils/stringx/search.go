// File: search.go
// Title: Null-Safe Ordinal Search
// Description: StartsWith/EndsWith, IndexOf/LastIndexOf and Contains
//              helpers with explicit ordinal semantics. None of them panic;
//              an empty search string or an out-of-range start yields the
//              "not found" result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import "strings"

// StartsWithInvariant reports whether s starts with any of the prefixes,
// comparing bytes exactly. It returns false when no prefix is given.
func StartsWithInvariant(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if OrdinalExact.hasPrefix(s, p) {
			return true
		}
	}
	return false
}

// StartsWithInvariantIgnoreCase reports whether s starts with prefix under
// OrdinalCaseInsensitive comparison.
func StartsWithInvariantIgnoreCase(s, prefix string) bool {
	return OrdinalCaseInsensitive.hasPrefix(s, prefix)
}

// EndsWithInvariant reports whether s ends with any of the suffixes,
// comparing bytes exactly.
func EndsWithInvariant(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if OrdinalExact.hasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// EndsWithInvariantIgnoreCase reports whether s ends with suffix under
// OrdinalCaseInsensitive comparison.
func EndsWithInvariantIgnoreCase(s, suffix string) bool {
	return OrdinalCaseInsensitive.hasSuffix(s, suffix)
}

// SafeIndexOf returns the byte offset of the first occurrence of substr in
// s under mode, or -1 if either operand is empty or there is no match.
func SafeIndexOf(s, substr string, mode Comparison) int {
	if s == "" {
		return -1
	}
	i, _ := mode.index(s, substr, 0)
	return i
}

// IndexOfInvariant is SafeIndexOf with OrdinalExact.
func IndexOfInvariant(s, substr string) int {
	return SafeIndexOf(s, substr, OrdinalExact)
}

// IndexOfInvariantIgnoreCase is SafeIndexOf with OrdinalCaseInsensitive.
func IndexOfInvariantIgnoreCase(s, substr string) int {
	return SafeIndexOf(s, substr, OrdinalCaseInsensitive)
}

// IndexOfInvariantFrom searches for substr starting at byte offset start.
// A start outside [0, len(s)] returns -1.
func IndexOfInvariantFrom(s, substr string, start int) int {
	i, _ := OrdinalExact.index(s, substr, start)
	return i
}

// LastIndexOfInvariant returns the byte offset of the last occurrence of
// substr in s, or -1.
func LastIndexOfInvariant(s, substr string) int {
	return OrdinalExact.lastIndex(s, substr)
}

// LastIndexOfInvariantIgnoreCase is LastIndexOfInvariant with
// OrdinalCaseInsensitive.
func LastIndexOfInvariantIgnoreCase(s, substr string) int {
	return OrdinalCaseInsensitive.lastIndex(s, substr)
}

// ContainsInvariant reports whether substr occurs in s. An empty substr
// never matches.
func ContainsInvariant(s, substr string) bool {
	return IndexOfInvariant(s, substr) != -1
}

// ContainsInvariantIgnoreCase is ContainsInvariant with
// OrdinalCaseInsensitive.
func ContainsInvariantIgnoreCase(s, substr string) bool {
	return IndexOfInvariantIgnoreCase(s, substr) != -1
}

// ContainsInvariantWith is ContainsInvariant with options. With
// ignoreCommas, commas are removed from both operands first, so
// "1,000" contains "100".
func ContainsInvariantWith(s, substr string, ignoreCase, ignoreCommas bool) bool {
	if ignoreCommas {
		s = strings.ReplaceAll(s, ",", "")
		substr = strings.ReplaceAll(substr, ",", "")
	}
	if ignoreCase {
		return ContainsInvariantIgnoreCase(s, substr)
	}
	return ContainsInvariant(s, substr)
}

// ContainsIgnoreSpaces removes all spaces from both operands and then
// behaves like ContainsInvariantWith.
func ContainsIgnoreSpaces(s, substr string, ignoreCase, ignoreCommas bool) bool {
	return ContainsInvariantWith(
		strings.ReplaceAll(s, " ", ""),
		strings.ReplaceAll(substr, " ", ""),
		ignoreCase,
		ignoreCommas,
	)
}
