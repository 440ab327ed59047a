// File: lines.go
// Title: Line-Oriented Operations
// Description: Splitting a string into lines, filtering lines, joining
//              them back and indenting them. Splitting normalizes CRLF to a
//              single terminator first so no line break is counted twice.
//              Joining uses LF, except IndentEachLine which joins with the
//              platform NewLine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import "strings"

// DefaultIndent is the prefix IndentEachLine callers use when they have no
// preference.
const DefaultIndent = "  "

// SimplifyNewlines replaces every CRLF pair with LF.
func SimplifyNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// SplitIntoLines splits s on CRLF, CR and LF, in that order of precedence.
// Empty lines are kept, so "a\n\nb" yields three lines and "" yields one
// empty line.
func SplitIntoLines(s string) []string {
	s = SimplifyNewlines(s)
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// AssembleFromLines joins lines with LF. It inverts SplitIntoLines as long
// as no line contains a terminator itself.
func AssembleFromLines(lines ...string) string {
	return strings.Join(lines, "\n")
}

// RemoveLines drops every line of s for which remove returns true and joins
// the rest with LF. A nil predicate returns s unchanged.
func RemoveLines(s string, remove func(line string) bool) string {
	if remove == nil {
		return s
	}
	lines := SplitIntoLines(s)
	kept := lines[:0]
	for _, line := range lines {
		if !remove(line) {
			kept = append(kept, line)
		}
	}
	return AssembleFromLines(kept...)
}

// IndentEachLine puts prefix in front of every line of s and joins the
// lines with NewLine. An empty s yields "".
func IndentEachLine(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := SplitIntoLines(s)
	var b strings.Builder
	b.Grow(len(s) + len(lines)*(len(prefix)+len(NewLine)))
	for i, line := range lines {
		if i > 0 {
			b.WriteString(NewLine)
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}
