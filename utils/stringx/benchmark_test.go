// File: benchmark_test.go
// Title: Benchmarks for stringx
// Description: Performance benchmarks for search, replace and line handling.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial benchmark implementation

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkIndexOfInvariant(b *testing.B) {
	text := strings.Repeat("lorem ipsum dolor ", 20) + "needle"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IndexOfInvariant(text, "needle")
	}
}

func BenchmarkIndexOfInvariantIgnoreCase(b *testing.B) {
	text := strings.Repeat("lorem ipsum dolor ", 20) + "NEEDLE"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IndexOfInvariantIgnoreCase(text, "needle")
	}
}

func BenchmarkReplace(b *testing.B) {
	text := strings.Repeat("the quick brown fox ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Replace(text, "fox", "dog", OrdinalExact)
	}
}

func BenchmarkReplaceIgnoreCase(b *testing.B) {
	text := strings.Repeat("The Quick Brown FOX ", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Replace(text, "fox", "dog", OrdinalCaseInsensitive)
	}
}

func BenchmarkSplitIntoLines(b *testing.B) {
	text := strings.Repeat("line one\r\nline two\nline three\r", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SplitIntoLines(text)
	}
}

func BenchmarkIndentEachLine(b *testing.B) {
	text := strings.Repeat("some line\n", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IndentEachLine(text, DefaultIndent)
	}
}

func BenchmarkToValidFilename(b *testing.B) {
	name := `  report: 2026/10 <draft> "final"?.txt  `

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToValidFilename(name)
	}
}
