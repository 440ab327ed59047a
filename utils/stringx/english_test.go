// File: english_test.go
// Title: Unit Tests for English Helpers
// Description: Tests for article selection and simple pluralization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestGetArticle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Elephant", "an"},
		{"elephant", "an"},
		{"Dog", "a"},
		{"  apple", "an"},
		{"Umbrella", "an"},
		{"Igloo", "an"},
		{"Orange", "an"},
		{"yak", "a"},
		{"Window", "a"},
		{"8-ball", "a"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GetArticle(tt.input); got != tt.expected {
				t.Errorf("GetArticle(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPluralString(t *testing.T) {
	tests := []struct {
		name     string
		noun     string
		n        int
		includeN bool
		expected string
	}{
		{"one without count", "cat", 1, false, "cat"},
		{"one with count", "cat", 1, true, "1 cat"},
		{"two with count", "cat", 2, true, "2 cats"},
		{"two without count", "cat", 2, false, "2 cats"},
		{"zero", "cat", 0, false, "0 cats"},
		{"negative", "cat", -1, true, "-1 cats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PluralString(tt.noun, tt.n, tt.includeN); got != tt.expected {
				t.Errorf("PluralString(%q, %d, %v) = %q; want %q", tt.noun, tt.n, tt.includeN, got, tt.expected)
			}
		})
	}
}
