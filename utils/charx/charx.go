// File: charx.go
// Title: Character Classifier
// Description: Implements digit, numeric and vowel classification of single
//              runes, and the combined Class lookup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package charx

// Class is the single category a rune falls into.
type Class int

const (
	ClassOther Class = iota
	ClassDigit
	ClassNumericPunctuation
	ClassVowel
	ClassAmbiguousLetter
)

// String returns the lower-case class name
func (c Class) String() string {
	switch c {
	case ClassDigit:
		return "digit"
	case ClassNumericPunctuation:
		return "numeric-punctuation"
	case ClassVowel:
		return "vowel"
	case ClassAmbiguousLetter:
		return "ambiguous-letter"
	default:
		return "other"
	}
}

// IsDigit reports whether r is in '0'..'9'.
// Decimal point and minus sign are not digits, see IsNumeric.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsNumeric reports whether r is a digit, a decimal point, a minus sign or a comma.
func IsNumeric(r rune) bool {
	return IsDigit(r) || isNumericPunctuation(r)
}

func isNumericPunctuation(r rune) bool {
	return r == '.' || r == '-' || r == ','
}

// IsVowel returns True for a, e, i, o, u, Unknown for y and w, and False
// for every other rune.
func IsVowel(r rune) TriState {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return True
	case 'y', 'w':
		return Unknown
	default:
		return False
	}
}

// Classify returns the class of r. Every rune has exactly one class.
func Classify(r rune) Class {
	switch {
	case IsDigit(r):
		return ClassDigit
	case isNumericPunctuation(r):
		return ClassNumericPunctuation
	}

	switch IsVowel(r) {
	case True:
		return ClassVowel
	case Unknown:
		return ClassAmbiguousLetter
	default:
		return ClassOther
	}
}
