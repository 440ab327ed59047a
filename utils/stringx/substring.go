// File: substring.go
// Title: Delimiter-Relative Substrings
// Description: Extracts the part of a string before the first, after the
//              first, or after the last occurrence of a marker. Only that
//              one occurrence governs; overlapping markers get no special
//              treatment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

// SubstringToFirstOccurrence returns everything before the first occurrence
// of marker, not including marker itself. If marker does not occur (or is
// empty) s is returned unchanged.
func SubstringToFirstOccurrence(s, marker string) string {
	if s == "" {
		return s
	}
	i := IndexOfInvariant(s, marker)
	if i == -1 {
		return s
	}
	return s[:i]
}

// SubstringFromFirstOccurrence returns everything after the first
// occurrence of marker:
//
//	SubstringFromFirstOccurrence("1+2+3=3+3=6", "=") == "3+3=6"
//
// If marker does not occur s is returned unchanged.
func SubstringFromFirstOccurrence(s, marker string) string {
	i := IndexOfInvariant(s, marker)
	if i == -1 {
		return s
	}
	return s[i+len(marker):]
}

// SubstringFromLastOccurrence returns everything after the last occurrence
// of marker, or s unchanged if marker does not occur.
func SubstringFromLastOccurrence(s, marker string) string {
	i := LastIndexOfInvariant(s, marker)
	if i == -1 {
		return s
	}
	return s[i+len(marker):]
}
