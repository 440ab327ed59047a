//go:build windows

package stringx

// NewLine is the native line terminator of the platform.
const NewLine = "\r\n"
