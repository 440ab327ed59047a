// File: substring_test.go
// Title: Unit Tests for Substring Extraction
// Description: Tests for the marker based substring helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestSubstringToFirstOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		marker   string
		expected string
	}{
		{"marker in middle", "a=b=c", "=", "a"},
		{"marker absent", "abc", "=", "abc"},
		{"marker at start", "=abc", "=", ""},
		{"empty marker", "abc", "", "abc"},
		{"empty string", "", "=", ""},
		{"multi-char marker", "key::value", "::", "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstringToFirstOccurrence(tt.s, tt.marker); got != tt.expected {
				t.Errorf("SubstringToFirstOccurrence(%q, %q) = %q; want %q", tt.s, tt.marker, got, tt.expected)
			}
		})
	}
}

func TestSubstringFromFirstOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		marker   string
		expected string
	}{
		{"equation", "1+2+3=3+3=6", "=", "3+3=6"},
		{"marker absent", "abc", "x", "abc"},
		{"marker at end", "abc=", "=", ""},
		{"empty marker", "abc", "", "abc"},
		{"multi-char marker", "key::value::x", "::", "value::x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstringFromFirstOccurrence(tt.s, tt.marker); got != tt.expected {
				t.Errorf("SubstringFromFirstOccurrence(%q, %q) = %q; want %q", tt.s, tt.marker, got, tt.expected)
			}
		})
	}
}

func TestSubstringFromLastOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		marker   string
		expected string
	}{
		{"path tail", "a/b/c", "/", "c"},
		{"marker absent", "abc", "/", "abc"},
		{"trailing marker", "a//", "/", ""},
		{"empty marker", "a/b", "", "a/b"},
		{"multi-char marker", "x->y->z", "->", "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SubstringFromLastOccurrence(tt.s, tt.marker); got != tt.expected {
				t.Errorf("SubstringFromLastOccurrence(%q, %q) = %q; want %q", tt.s, tt.marker, got, tt.expected)
			}
		})
	}
}
