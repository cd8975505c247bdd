// File: strip.go
// Title: Whitespace Removal
// Description: Deletes ASCII whitespace from strings and filters string
//              slices down to their non-blank, stripped elements.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

// StripWhitespace removes every ASCII whitespace byte from s, wherever it
// occurs. This deletes interior whitespace too; it is not a trim.
func StripWhitespace(s string) string {
	first := -1
	for i := 0; i < len(s); i++ {
		if IsSpace(s[i]) {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}

	buf := make([]byte, first, len(s))
	copy(buf, s[:first])
	for i := first + 1; i < len(s); i++ {
		if !IsSpace(s[i]) {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

// StripWhitespaceAll strips every element of items and returns the
// elements that are non-empty afterwards, in their original order.
// items is not modified. The result is never nil.
func StripWhitespaceAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if stripped := StripWhitespace(item); stripped != "" {
			out = append(out, stripped)
		}
	}
	return out
}
