// Package charx classifies single characters.
//
// Package: charx
// Title: Character Classification for textkit
// Description: Digit, numeric and vowel classification of single runes.
//              Vowel status is returned as a TriState because y and w are
//              vowels or consonants depending on the word, and the caller
//              has to decide what that means for them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
//
// Usage:
//
//	charx.IsDigit('7')    // true
//	charx.IsNumeric(',')  // true
//	switch charx.IsVowel(r) {
//	case charx.True:
//	    // a, e, i, o, u
//	case charx.Unknown:
//	    // y, w
//	default:
//	    // everything else
//	}
//
// Only lower-case ASCII vowels are recognized; lower the input first.
// All functions are pure and safe for concurrent use.
package charx
