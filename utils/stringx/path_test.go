// File: path_test.go
// Title: Unit Tests for Path Prefix Computation
// Description: Tests for CommonPathPrefix including paths of unequal depth.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial test implementation

package stringx

import "testing"

func TestCommonPathPrefix(t *testing.T) {
	tests := []struct {
		name    string
		p1, p2  string
		prefix  string
		suffix1 int
		suffix2 int
	}{
		{"diverging leaf", "a/b/c", "a/b/d", "a/b", 1, 1},
		{"first shorter", "a/b", "a/b/c", "a/b", 0, 1},
		{"second shorter", "a/b/c", "a", "a", 2, 0},
		{"identical", "a/b", "a/b", "a/b", 0, 0},
		{"nothing shared", "x/y", "a/b", "", 2, 2},
		{"absolute", "/usr/lib", "/usr/bin", "/usr", 1, 1},
		{"both empty", "", "", "", 0, 0},
		{"one empty", "", "a/b", "", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, s1, s2 := CommonPathPrefix(tt.p1, tt.p2)
			if prefix != tt.prefix || s1 != tt.suffix1 || s2 != tt.suffix2 {
				t.Errorf("CommonPathPrefix(%q, %q) = (%q, %d, %d); want (%q, %d, %d)",
					tt.p1, tt.p2, prefix, s1, s2, tt.prefix, tt.suffix1, tt.suffix2)
			}
		})
	}
}

func TestCommonPathPrefixSymmetry(t *testing.T) {
	pairs := [][2]string{{"a/b/c", "a/b/d"}, {"a", "a/b/c/d"}, {"x", "y"}}

	for _, p := range pairs {
		prefix1, a1, b1 := CommonPathPrefix(p[0], p[1])
		prefix2, a2, b2 := CommonPathPrefix(p[1], p[0])
		if prefix1 != prefix2 || a1 != b2 || b1 != a2 {
			t.Errorf("CommonPathPrefix not symmetric for %q", p)
		}
	}
}
