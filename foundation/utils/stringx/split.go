// File: split.go
// Title: Delimiter Splitting
// Description: Splits a string at a single delimiter character with
//              line-extraction semantics.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-20
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-20 v0.1.1: Documented delimiter encoding

package stringx

import (
	"strings"
)

// SplitString splits s at every occurrence of delim, left to right.
// Empty segments between adjacent delimiters are kept; a trailing delimiter
// does not produce a trailing empty segment. The result is never nil:
// SplitString("", d) returns an empty slice.
//
// delim is matched by its UTF-8 encoding, so any Unicode character can
// separate fields. A raw byte of 0x80 or above that is not valid UTF-8 on its
// own cannot be used: rune(0xff) matches "ÿ" (0xC3 0xBF), not the byte 0xFF.
func SplitString(s string, delim rune) []string {
	return AppendSplit(make([]string, 0, strings.Count(s, string(delim))+1), s, delim)
}

// AppendSplit appends the segments of s to dst and returns the extended
// slice, in the manner of strconv.AppendInt.
func AppendSplit(dst []string, s string, delim rune) []string {
	sep := string(delim)
	for len(s) > 0 {
		i := strings.Index(s, sep)
		if i < 0 {
			return append(dst, s)
		}
		dst = append(dst, s[:i])
		s = s[i+len(sep):]
	}
	return dst
}
