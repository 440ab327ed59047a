// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds a textkit configuration file in the working directory
//              or the user configuration directory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base names without extension
	Extensions []string // Extensions to try, in order
}

// DefaultDiscoveryOptions searches ./textkit.* and
// <user config dir>/textkit/config.*.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "textkit"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"textkit", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover returns the first existing regular file matching options, or ""
// when there is none. Nothing is parsed.
func Discover(options DiscoveryOptions) string {
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
					return candidate
				}
			}
		}
	}
	return ""
}
