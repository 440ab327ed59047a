// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string-level primitives of
//              textkit: substring extraction around markers, prefix and
//              suffix handling, line operations, ordinal search and replace,
//              common path prefixes, file name sanitization and quoting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

// Package stringx provides string manipulation primitives for textkit.
//
// Overview
//
// Every function is a pure function over immutable strings: it returns a new
// value and never keeps state, so all of them are safe for concurrent use.
// Indices are byte offsets into the UTF-8 encoding.
//
// Edge-case policy
//
// Go strings cannot be null, so the empty string plays the role of an absent
// value. Functions propagate it instead of failing:
//
//   - empty input produces empty output (SubstringToFirstOccurrence,
//     RemovePrefix, RemoveSuffix, IndentEachLine)
//   - a marker that is not found returns the input unchanged
//   - searches return -1 for an empty operand or no match
//   - PrefixCount returns -1 for an empty prefix
//
// The one exception is Replace, which rejects an empty old value with an
// INVALID_ARGUMENT error from core/errors; MustReplace panics instead.
//
// Comparison
//
// Comparisons are ordinal. OrdinalExact compares bytes; OrdinalCaseInsensitive
// compares runes under simple Unicode case folding (via
// github.com/charlievieth/strcase). No function consults the locale.
//
// Usage Examples
//
// Markers and affixes:
//
//	stringx.SubstringFromFirstOccurrence("1+2+3=3+3=6", "=") // "3+3=6"
//	stringx.RemovePrefix("../../x", "../", true)           // "x"
//	stringx.PrefixCount("../../x", "../")                   // 2
//	stringx.StringWithSuffix("dir/", "/")                   // "dir/"
//
// Lines:
//
//	lines := stringx.SplitIntoLines("a\r\nb\rc\n")  // ["a" "b" "c" ""]
//	stringx.AssembleFromLines(lines...)             // "a\nb\nc\n"
//	stringx.IndentEachLine("a\nb", stringx.DefaultIndent)
//
// Paths, file names and quotes:
//
//	prefix, n1, n2 := stringx.CommonPathPrefix("a/b/c", "a/b/d") // "a/b", 1, 1
//	stringx.ToValidFilename("report: 2026/10")                   // platform dependent
//	stringx.WrapInQuotes("x")                                    // "\"x\""
//	stringx.RemoveWrappingQuotes("'x'")                          // "x"
//
// Replace:
//
//	out, err := stringx.Replace("Hello HELLO", "hello", "bye", stringx.OrdinalCaseInsensitive)
//	// out == "bye bye"
//
// English
//
// GetArticle and PluralString implement one English heuristic each and
// nothing more; see their documentation for the cases they get wrong.
package stringx
