// Package error provides structured error handling for textkit.
//
// Package: error
// Title: textkit Error Handling Framework
// Description: This package implements a structured error type carrying a
//              code, a severity, an operation name and free-form details.
//              The domain packages under utils/ only produce errors for
//              invalid arguments; the configuration layer and the CLI use
//              the full set of codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation derived from the mDW foundation
//
// Usage:
//   import tkerror "github.com/msto63/textkit/core/error"
//
//   err := tkerror.New("old value must not be empty").
//     WithCode(tkerror.CodeInvalidArgument).
//     WithOperation("stringx.replace").
//     WithDetail("argument", "oldValue")
//
//   if tkerror.HasCode(err, tkerror.CodeInvalidArgument) {
//     // reject the call
//   }
package error
