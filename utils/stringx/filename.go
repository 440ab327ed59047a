// File: filename.go
// Title: File Name Sanitization
// Description: Turns arbitrary text into a usable file name by dropping
//              the characters the platform rejects.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Added ToValidFilenameOr for caller-chosen placeholders

package stringx

import (
	"strings"

	"github.com/msto63/textkit/utils/filex"
)

// FilenamePlaceholder is returned when nothing usable is left of the input.
const FilenamePlaceholder = "NonAlphaName"

// ToValidFilename removes every character that is invalid in a file name on
// the running platform, trims surrounding whitespace, and falls back to
// FilenamePlaceholder when the result is empty. The result is never empty.
func ToValidFilename(s string) string {
	return ToValidFilenameFor(s, filex.InvalidFilenameChars())
}

// ToValidFilenameFor is ToValidFilename with an explicit invalid set.
func ToValidFilenameFor(s string, invalid filex.CharSet) string {
	return ToValidFilenameOr(s, invalid, FilenamePlaceholder)
}

// ToValidFilenameOr is ToValidFilenameFor returning placeholder instead of
// FilenamePlaceholder when nothing is left. Only an empty result is
// replaced; input that happens to equal FilenamePlaceholder is kept.
func ToValidFilenameOr(s string, invalid filex.CharSet, placeholder string) string {
	cleaned := strings.TrimSpace(strings.Map(func(r rune) rune {
		if invalid.Contains(r) {
			return -1
		}
		return r
	}, s))

	if cleaned == "" {
		return placeholder
	}
	return cleaned
}
