// Package errors provides the shared error constructors used by every
// textkit package.
//
// Package: errors
// Title: Standardized Error Construction for textkit
// Description: Wraps core/error with a fluent ErrorBuilder and a small set of
//              standard constructors so that every package reports invalid
//              arguments, invalid configuration and failed operations with
//              the same codes and the same "module"/"operation" details.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation derived from the mDW foundation
//
// Usage:
//
//	if oldValue == "" {
//	    return "", errors.StringxInvalidArgument("replace", "oldValue", oldValue, "non-empty string")
//	}
//
//	if errors.IsModuleOperation(err, errors.ModuleStringx, "replace") {
//	    // ...
//	}
package errors
