// File: settings.go
// Title: textkit Settings
// Description: Typed view of the configuration keys the textkit CLI reads
//              from the log and text tables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Added log.verbose, text.indent_width and
//                      text.single_quote

package config

import (
	"fmt"
	"strings"

	"github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/core/log"
	"github.com/msto63/textkit/utils/filex"
	"github.com/msto63/textkit/utils/stringx"
)

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "TEXTKIT"

// Configuration keys
const (
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyLogVerbose      = "log.verbose"
	KeyTextIndent      = "text.indent"
	KeyTextIndentWidth = "text.indent_width"
	KeyTextComparison  = "text.comparison"
	KeyTextPlaceholder = "text.placeholder"
	KeyTextSingleQuote = "text.single_quote"
)

// MaxIndentWidth bounds text.indent_width
const MaxIndentWidth = 16

// Settings is the resolved CLI configuration
type Settings struct {
	LogLevel  log.Level
	LogFormat log.Format

	// Verbose lowers the log level to debug, like --verbose
	Verbose bool

	Indent      string
	Comparison  stringx.Comparison
	Placeholder string

	// SingleQuote makes the quote command use single quotes
	SingleQuote bool

	// Source is the file the settings came from, "" for defaults only
	Source string
}

// DefaultSettings returns the settings used when no file or environment
// variable says otherwise.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:    log.DefaultLevel(),
		LogFormat:   log.FormatText,
		Indent:      stringx.DefaultIndent,
		Comparison:  stringx.OrdinalExact,
		Placeholder: stringx.FilenamePlaceholder,
	}
}

// defaultValues renders DefaultSettings as dot-notation config defaults
func defaultValues() map[string]interface{} {
	d := DefaultSettings()
	return map[string]interface{}{
		KeyLogLevel:        d.LogLevel.String(),
		KeyLogFormat:       d.LogFormat.String(),
		KeyTextIndent:      d.Indent,
		KeyTextComparison:  d.Comparison.String(),
		KeyTextPlaceholder: d.Placeholder,
	}
}

// LoadSettings reads settings from path, falling back to defaults for
// missing keys. An empty path uses the defaults only. TEXTKIT_* environment
// variables override both, e.g. TEXTKIT_LOG_LEVEL=debug.
func LoadSettings(path string) (Settings, error) {
	options := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  defaultValues(),
	}

	var cfg *Config
	if stringx.IsBlank(path) {
		cfg = New(options)
	} else {
		loaded, err := LoadWithOptions(path, options)
		if err != nil {
			return Settings{}, err
		}
		cfg = loaded
	}

	return SettingsFromConfig(cfg)
}

// SettingsFromConfig parses and validates the textkit keys of cfg
func SettingsFromConfig(cfg *Config) (Settings, error) {
	s := DefaultSettings()
	s.Source = cfg.FilePath()

	levelValue := cfg.GetString(KeyLogLevel, s.LogLevel.String())
	level, err := log.ParseLevel(levelValue)
	if err != nil {
		return Settings{}, errors.ConfigInvalidValue(KeyLogLevel, levelValue, err.Error())
	}
	s.LogLevel = level

	formatValue := cfg.GetString(KeyLogFormat, s.LogFormat.String())
	format, err := log.ParseFormat(formatValue)
	if err != nil {
		return Settings{}, errors.ConfigInvalidValue(KeyLogFormat, formatValue, err.Error())
	}
	s.LogFormat = format

	comparisonValue := cfg.GetString(KeyTextComparison, s.Comparison.String())
	comparison, err := stringx.ParseComparison(comparisonValue)
	if err != nil {
		return Settings{}, errors.ConfigInvalidValue(KeyTextComparison, comparisonValue,
			"expected ordinal or ordinal-ignore-case")
	}
	s.Comparison = comparison

	if s.Verbose, err = boolSetting(cfg, KeyLogVerbose, s.Verbose); err != nil {
		return Settings{}, err
	}
	if s.SingleQuote, err = boolSetting(cfg, KeyTextSingleQuote, s.SingleQuote); err != nil {
		return Settings{}, err
	}

	// text.indent_width, when present, wins over text.indent
	s.Indent = cfg.GetString(KeyTextIndent, s.Indent)
	if cfg.Has(KeyTextIndentWidth) {
		width := cfg.GetInt(KeyTextIndentWidth, -1)
		if width < 0 || width > MaxIndentWidth {
			return Settings{}, errors.ConfigInvalidValue(KeyTextIndentWidth, cfg.GetString(KeyTextIndentWidth),
				fmt.Sprintf("expected an integer from 0 to %d", MaxIndentWidth))
		}
		s.Indent = strings.Repeat(" ", width)
	}

	s.Placeholder = cfg.GetString(KeyTextPlaceholder, s.Placeholder)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// boolSetting reads key as a bool, def when it is not set. A value that
// parses reads the same under either default.
func boolSetting(cfg *Config, key string, def bool) (bool, error) {
	if !cfg.Has(key) {
		return def, nil
	}
	value := cfg.GetBool(key, def)
	if value != cfg.GetBool(key, !def) {
		return false, errors.ConfigInvalidValue(key, cfg.GetString(key), "expected true or false")
	}
	return value, nil
}

// Validate checks the values that parsing alone does not constrain: the
// indent must not contain line terminators, and the placeholder must be a
// usable file name on every platform.
func (s Settings) Validate() error {
	if strings.ContainsAny(s.Indent, "\r\n") {
		return errors.ConfigInvalidValue(KeyTextIndent, s.Indent, "must not contain line breaks")
	}

	if stringx.IsBlank(s.Placeholder) {
		return errors.ConfigInvalidValue(KeyTextPlaceholder, s.Placeholder, "must not be blank")
	}
	invalid := filex.InvalidFilenameCharsFor("windows")
	if stringx.ToValidFilenameFor(s.Placeholder, invalid) != s.Placeholder {
		return errors.ConfigInvalidValue(KeyTextPlaceholder, s.Placeholder,
			"must be a valid file name without surrounding whitespace")
	}

	return nil
}
