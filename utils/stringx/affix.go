// File: affix.go
// Title: Prefix and Suffix Manipulation
// Description: Removing, counting and ensuring prefixes and suffixes with
//              ordinal comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

// RemovePrefix strips one leading prefix from s. With repeat it keeps
// stripping until s no longer starts with prefix. An empty prefix leaves s
// unchanged.
func RemovePrefix(s, prefix string, repeat bool) string {
	if s == "" || prefix == "" {
		return s
	}
	for StartsWithInvariant(s, prefix) {
		s = s[len(prefix):]
		if !repeat {
			break
		}
	}
	return s
}

// PrefixCount returns the number of consecutive copies of prefix at the
// start of s, or -1 if prefix is empty.
func PrefixCount(s, prefix string) int {
	if prefix == "" {
		return -1
	}
	n := 0
	for StartsWithInvariant(s, prefix) {
		s = s[len(prefix):]
		n++
	}
	return n
}

// RemoveSuffix is the suffix counterpart of RemovePrefix.
func RemoveSuffix(s, suffix string, repeat bool) string {
	if s == "" || suffix == "" {
		return s
	}
	for EndsWithInvariant(s, suffix) {
		s = s[:len(s)-len(suffix)]
		if !repeat {
			break
		}
	}
	return s
}

// StringWithPrefix returns s if it already starts with prefix, otherwise
// prefix+s. An empty prefix returns s.
func StringWithPrefix(s, prefix string) string {
	if prefix == "" {
		return s
	}
	if s == "" {
		return prefix
	}
	if StartsWithInvariant(s, prefix) {
		return s
	}
	return prefix + s
}

// StringWithSuffix returns s if it already ends with suffix, otherwise
// s+suffix. An empty suffix returns s.
func StringWithSuffix(s, suffix string) string {
	if suffix == "" {
		return s
	}
	if s == "" {
		return suffix
	}
	if EndsWithInvariant(s, suffix) {
		return s
	}
	return s + suffix
}
