// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks and default selection shared by the config
//              loader and the command line tool, plus the ASCII whitespace
//              classification every other function in the package uses.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.3.0: ASCII whitespace classification, trimmed helper set

package stringx

// IsSpace reports whether b is ASCII whitespace: space, \t, \n, \v, \f or \r
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsBlank returns true if the string is empty or contains only ASCII whitespace
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsSpace(s[i]) {
			return false
		}
	}
	return true
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
// This is useful for providing default values in a chain.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

// ContainsByte reports whether set contains the byte b
func ContainsByte(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}
