// File: quote.go
// Title: Quote Wrapping
// Description: Adds or removes one layer of wrapping quotes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

const (
	// Quote is the double quote character as a string
	Quote = "\""

	// SingleQuote is the single quote character as a string
	SingleQuote = "'"
)

// WrapInQuotes wraps s in double quotes. A leading or trailing quote that is
// already present is not duplicated, so wrapping twice equals wrapping once.
// Only the two ends are inspected, not whether the inner quotes balance.
func WrapInQuotes(s string) string {
	return WrapInQuotesWith(s, Quote)
}

// WrapInQuotesWith is WrapInQuotes with a caller-chosen quote string.
func WrapInQuotesWith(s, quote string) string {
	return StringWithSuffix(StringWithPrefix(s, quote), quote)
}

// RemoveWrappingQuotes strips exactly one layer of matching double or single
// quotes. s is returned unchanged when it is shorter than two characters or
// its ends do not carry the same quote.
func RemoveWrappingQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	for _, quote := range []string{Quote, SingleQuote} {
		if StartsWithInvariant(s, quote) && EndsWithInvariant(s, quote) {
			return s[1 : len(s)-1]
		}
	}
	return s
}
