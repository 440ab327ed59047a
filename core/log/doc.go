// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides the structured logger used by the
//              textkit command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

// Package log provides structured logging for textkit.
//
// The text utilities in utils/ never log; they are pure functions. Logging
// happens at the edge, in cmd/textkit, where every run gets a logger tagged
// with a request ID and the command path:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatJSON,
//		Output: os.Stderr,
//		Name:   "textkit",
//	}).WithRequestID(uuid.NewString()).WithCommand("textkit replace")
//
//	logger.Debug("settings loaded", log.Field("comparison", "ordinal"))
//	logger.LogError(err) // level follows the error severity
//
// Three formats are available: text (default), json and logfmt. Fields are
// written in sorted key order in all of them.
package log
