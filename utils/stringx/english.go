// File: english.go
// Title: English Article and Plural Heuristics
// Description: Picks "a" or "an" for a word and builds naive plurals. This
//              is deliberately a single English heuristic, not an i18n layer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/textkit/utils/charx"
)

// GetArticle returns "an" when the first letter of the trimmed, lower-cased
// s is a vowel, "a" otherwise, and "" when s is blank.
//
// y and w (charx.Unknown) get "a": "a yak", "a window". Words like "hour"
// or "unit" are not handled.
func GetArticle(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	// A fresh Caser per call: Caser values are not safe for concurrent use.
	lowered := cases.Lower(language.Und).String(trimmed)
	first, _ := utf8.DecodeRuneInString(lowered)
	if charx.IsVowel(first) == charx.True {
		return "an"
	}
	return "a"
}

// PluralString returns noun for n == 1 ("1 noun" with includeN) and
// "<n> <noun>s" for every other n. Irregular plurals are not handled.
func PluralString(noun string, n int, includeN bool) string {
	if n == 1 {
		if includeN {
			return "1 " + noun
		}
		return noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
