// File: charx_test.go
// Title: Unit Tests for Character Classification
// Description: Table tests for digit, numeric and vowel classification and TriState.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package charx

import "testing"

func TestIsDigit(t *testing.T) {
	tests := []struct {
		name     string
		input    rune
		expected bool
	}{
		{"zero", '0', true},
		{"nine", '9', true},
		{"five", '5', true},
		{"decimal point", '.', false},
		{"minus", '-', false},
		{"comma", ',', false},
		{"letter", 'a', false},
		{"slash below zero", '/', false},
		{"colon above nine", ':', false},
		{"arabic-indic digit", '٣', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDigit(tt.input); got != tt.expected {
				t.Errorf("IsDigit(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    rune
		expected bool
	}{
		{"digit", '3', true},
		{"decimal point", '.', true},
		{"minus", '-', true},
		{"comma", ',', true},
		{"plus", '+', false},
		{"space", ' ', false},
		{"letter", 'e', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNumeric(tt.input); got != tt.expected {
				t.Errorf("IsNumeric(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsVowel(t *testing.T) {
	tests := []struct {
		input    rune
		expected TriState
	}{
		{'a', True},
		{'e', True},
		{'i', True},
		{'o', True},
		{'u', True},
		{'y', Unknown},
		{'w', Unknown},
		{'b', False},
		{'z', False},
		{'A', False},
		{'Y', False},
		{'1', False},
		{'é', False},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := IsVowel(tt.input); got != tt.expected {
				t.Errorf("IsVowel(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input    rune
		expected Class
	}{
		{'0', ClassDigit},
		{'.', ClassNumericPunctuation},
		{'-', ClassNumericPunctuation},
		{',', ClassNumericPunctuation},
		{'o', ClassVowel},
		{'y', ClassAmbiguousLetter},
		{'w', ClassAmbiguousLetter},
		{'k', ClassOther},
		{' ', ClassOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := Classify(tt.input); got != tt.expected {
				t.Errorf("Classify(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClassifyIsExclusive(t *testing.T) {
	for r := rune(0); r < 0x250; r++ {
		c := Classify(r)
		digit := IsDigit(r)
		numeric := IsNumeric(r)
		vowel := IsVowel(r)

		switch c {
		case ClassDigit:
			if !digit {
				t.Errorf("Classify(%q) = digit but IsDigit = false", r)
			}
		case ClassNumericPunctuation:
			if digit || !numeric {
				t.Errorf("Classify(%q) = numeric-punctuation, IsDigit=%v IsNumeric=%v", r, digit, numeric)
			}
		case ClassVowel:
			if vowel != True {
				t.Errorf("Classify(%q) = vowel but IsVowel = %v", r, vowel)
			}
		case ClassAmbiguousLetter:
			if vowel != Unknown {
				t.Errorf("Classify(%q) = ambiguous but IsVowel = %v", r, vowel)
			}
		case ClassOther:
			if numeric || vowel != False {
				t.Errorf("Classify(%q) = other but IsNumeric=%v IsVowel=%v", r, numeric, vowel)
			}
		}
	}
}

func TestTriState(t *testing.T) {
	tests := []struct {
		state   TriState
		str     string
		isTrue  bool
		isKnown bool
		value   bool
		ok      bool
	}{
		{False, "false", false, true, false, true},
		{True, "true", true, true, true, true},
		{Unknown, "unknown", false, false, false, false},
		{TriState(9), "invalid", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.state.String(); got != tt.str {
				t.Errorf("String() = %q; want %q", got, tt.str)
			}
			if got := tt.state.IsTrue(); got != tt.isTrue {
				t.Errorf("IsTrue() = %v; want %v", got, tt.isTrue)
			}
			if got := tt.state.IsKnown(); got != tt.isKnown {
				t.Errorf("IsKnown() = %v; want %v", got, tt.isKnown)
			}
			value, ok := tt.state.Bool()
			if value != tt.value || ok != tt.ok {
				t.Errorf("Bool() = (%v, %v); want (%v, %v)", value, ok, tt.value, tt.ok)
			}
		})
	}
}

func TestClassString(t *testing.T) {
	tests := map[Class]string{
		ClassOther:              "other",
		ClassDigit:              "digit",
		ClassNumericPunctuation: "numeric-punctuation",
		ClassVowel:              "vowel",
		ClassAmbiguousLetter:    "ambiguous-letter",
	}

	for class, want := range tests {
		if got := class.String(); got != want {
			t.Errorf("Class(%d).String() = %q; want %q", class, got, want)
		}
	}
}
