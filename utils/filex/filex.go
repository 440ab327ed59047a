// File: filex.go
// Title: Invalid File Name Characters
// Description: Implements CharSet and the per-platform invalid file name
//              character sets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package filex

import (
	"runtime"
	"strconv"
	"strings"
)

// CharSet is an ordered list of runes.
type CharSet []rune

// Contains reports whether r is in the set
func (cs CharSet) Contains(r rune) bool {
	for _, c := range cs {
		if c == r {
			return true
		}
	}
	return false
}

// String renders the set with control characters quoted, e.g. `'\x00' '/'`.
func (cs CharSet) String() string {
	parts := make([]string, len(cs))
	for i, r := range cs {
		parts[i] = strconv.QuoteRune(r)
	}
	return strings.Join(parts, " ")
}

var windowsInvalid = func() CharSet {
	set := CharSet{'"', '<', '>', '|', 0}
	for r := rune(1); r < 32; r++ {
		set = append(set, r)
	}
	return append(set, ':', '*', '?', '\\', '/')
}()

var unixInvalid = CharSet{0, '/'}

// InvalidFilenameChars returns the characters that are not allowed in a file
// name on the running platform.
func InvalidFilenameChars() CharSet {
	return InvalidFilenameCharsFor(runtime.GOOS)
}

// InvalidFilenameCharsFor returns the invalid file name characters for the
// given GOOS value. The result is a fresh copy the caller may modify.
func InvalidFilenameCharsFor(goos string) CharSet {
	src := unixInvalid
	if goos == "windows" {
		src = windowsInvalid
	}
	out := make(CharSet, len(src))
	copy(out, src)
	return out
}

// IsValidFilenameChar reports whether r may appear in a file name on the
// running platform.
func IsValidFilenameChar(r rune) bool {
	return !InvalidFilenameChars().Contains(r)
}
