// File: affix_test.go
// Title: Unit Tests for Prefix and Suffix Handling
// Description: Tests for removing, counting and ensuring prefixes and suffixes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestRemovePrefix(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		prefix   string
		repeat   bool
		expected string
	}{
		{"single layer", "../../x", "../", false, "../x"},
		{"all layers", "../../x", "../", true, "x"},
		{"not a prefix", "abc", "b", false, "abc"},
		{"empty prefix", "x", "", true, "x"},
		{"empty string", "", "a", true, ""},
		{"whole string repeated", "aaa", "a", true, ""},
		{"whole string once", "aaa", "a", false, "aa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemovePrefix(tt.s, tt.prefix, tt.repeat); got != tt.expected {
				t.Errorf("RemovePrefix(%q, %q, %v) = %q; want %q", tt.s, tt.prefix, tt.repeat, got, tt.expected)
			}
		})
	}
}

func TestPrefixCount(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		prefix   string
		expected int
	}{
		{"two layers", "../../x", "../", 2},
		{"none", "x", "../", 0},
		{"empty prefix", "x", "", -1},
		{"empty string", "", "a", 0},
		{"runs until mismatch", "aaab", "a", 3},
		{"non-consecutive", "abab", "ab", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixCount(tt.s, tt.prefix); got != tt.expected {
				t.Errorf("PrefixCount(%q, %q) = %d; want %d", tt.s, tt.prefix, got, tt.expected)
			}
		})
	}
}

func TestRemoveSuffix(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		suffix   string
		repeat   bool
		expected string
	}{
		{"single layer", "a.txt.txt", ".txt", false, "a.txt"},
		{"all layers", "a.txt.txt", ".txt", true, "a"},
		{"not a suffix", "a.md", ".txt", true, "a.md"},
		{"empty suffix", "a", "", false, "a"},
		{"empty string", "", "a", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveSuffix(tt.s, tt.suffix, tt.repeat); got != tt.expected {
				t.Errorf("RemoveSuffix(%q, %q, %v) = %q; want %q", tt.s, tt.suffix, tt.repeat, got, tt.expected)
			}
		})
	}
}

func TestStringWithPrefixAndSuffix(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		affix      string
		withPrefix string
		withSuffix string
	}{
		{"absent", "b", "a", "ab", "ba"},
		{"already present", "aba", "a", "aba", "aba"},
		{"empty string", "", "a", "a", "a"},
		{"empty affix", "b", "", "b", "b"},
		{"multi-char", "path", "./", "./path", "path./"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringWithPrefix(tt.s, tt.affix); got != tt.withPrefix {
				t.Errorf("StringWithPrefix(%q, %q) = %q; want %q", tt.s, tt.affix, got, tt.withPrefix)
			}
			if got := StringWithSuffix(tt.s, tt.affix); got != tt.withSuffix {
				t.Errorf("StringWithSuffix(%q, %q) = %q; want %q", tt.s, tt.affix, got, tt.withSuffix)
			}
		})
	}
}

func TestAffixProperties(t *testing.T) {
	samples := []string{"", "x", "hello", "../x", "ab ab", "äöü"}
	affixes := []string{"a", "../", "ab", "ü"}

	for _, s := range samples {
		for _, p := range affixes {
			if !StartsWithInvariant(s, p) {
				if got := RemovePrefix(StringWithPrefix(s, p), p, false); got != s {
					t.Errorf("RemovePrefix(StringWithPrefix(%q, %q)) = %q; want %q", s, p, got, s)
				}
			}
			if !EndsWithInvariant(s, p) {
				if got := RemoveSuffix(StringWithSuffix(s, p), p, false); got != s {
					t.Errorf("RemoveSuffix(StringWithSuffix(%q, %q)) = %q; want %q", s, p, got, s)
				}
			}
			if n := PrefixCount(RemovePrefix(s, p, true), p); n != 0 {
				t.Errorf("PrefixCount after repeated RemovePrefix(%q, %q) = %d; want 0", s, p, n)
			}
			if got := StringWithPrefix(StringWithPrefix(s, p), p); got != StringWithPrefix(s, p) {
				t.Errorf("StringWithPrefix is not idempotent for (%q, %q)", s, p)
			}
		}
	}
}
