// File: path.go
// Title: Common Path Prefix
// Description: Computes the longest run of leading "/"-separated segments
//              shared by two paths. No escaping, no cleaning: segments are
//              exactly what strings.Split produces.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import "strings"

// PathSeparator separates path segments for CommonPathPrefix.
const PathSeparator = "/"

// CommonPathPrefix returns the leading segments p1 and p2 have in common,
// joined by "/", and for each path the number of segments after that
// prefix.
//
//	CommonPathPrefix("a/b/c", "a/b/d") // "a/b", 1, 1
//	CommonPathPrefix("a/b", "a/b/c")   // "a/b", 0, 1
func CommonPathPrefix(p1, p2 string) (prefix string, suffix1, suffix2 int) {
	segs1 := strings.Split(p1, PathSeparator)
	segs2 := strings.Split(p2, PathSeparator)

	// Comparison stops when the shorter path runs out of segments.
	n := min(len(segs1), len(segs2))
	matching := 0
	for matching < n && segs1[matching] == segs2[matching] {
		matching++
	}

	return strings.Join(segs1[:matching], PathSeparator), len(segs1) - matching, len(segs2) - matching
}
