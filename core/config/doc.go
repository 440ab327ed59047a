// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads textkit configuration from TOML or YAML
//              files and the environment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

// Package config loads textkit configuration.
//
// Files are TOML (github.com/BurntSushi/toml) or YAML (gopkg.in/yaml.v3),
// chosen by extension. Values are read with dot-notation keys:
//
//	cfg, err := config.Load("textkit.toml")
//	level := cfg.GetString("log.level", "warn")
//
// With LoadOptions.EnvPrefix set, environment variables override file
// values: prefix TEXTKIT and key text.indent give TEXTKIT_TEXT_INDENT.
//
// The CLI does not use Config directly but the typed Settings built on top
// of it:
//
//	[log]
//	level  = "warn"      # trace, debug, info, warn, error, audit
//	format = "text"      # text, json, logfmt
//
//	[text]
//	indent      = "  "           # lines indent default prefix
//	comparison  = "ordinal"      # or ordinal-ignore-case
//	placeholder = "NonAlphaName" # filename fallback
//
// Every load error is a *tkerror.Error with code NOT_FOUND, MISSING_CONFIG
// or INVALID_CONFIG.
package config
