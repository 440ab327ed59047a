// File: tristate.go
// Title: Three-Valued Classification Result
// Description: TriState is the result type for classifications that can be
//              undecided, so that callers handle the ambiguous case
//              explicitly instead of receiving a nullable bool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package charx

// TriState is a value in {False, True, Unknown}.
type TriState int

const (
	// False means the classification definitely does not hold
	False TriState = iota

	// True means the classification definitely holds
	True

	// Unknown means the answer depends on context the classifier does not see
	Unknown
)

// String returns "false", "true" or "unknown"
func (t TriState) String() string {
	switch t {
	case False:
		return "false"
	case True:
		return "true"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// IsTrue reports whether t is True. Unknown is not true.
func (t TriState) IsTrue() bool {
	return t == True
}

// IsKnown reports whether t is True or False
func (t TriState) IsKnown() bool {
	return t == True || t == False
}

// Bool converts t to a bool; ok is false for Unknown.
func (t TriState) Bool() (value bool, ok bool) {
	switch t {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}
