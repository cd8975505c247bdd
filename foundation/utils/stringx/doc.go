// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string splitting, whitespace
//              stripping and line tokenizing helpers used to read
//              instrument and array description files.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Splitting, stripping and tokenizing for text data files

// Package stringx provides string splitting, whitespace stripping and
// tokenizing for line-oriented text data.
//
// # Whitespace
//
// Whitespace means the six ASCII bytes recognised by C's isspace in the
// "C" locale: space, \t, \n, \v, \f and \r. Unicode spaces such as U+00A0
// are ordinary characters here.
//
// # Splitting
//
// SplitString follows line-extraction semantics: every delimiter ends a
// segment, so a delimiter at the very end does not open a new, empty
// segment, and the empty string has no segments at all.
//
//	stringx.SplitString("a,b,,c", ',') // ["a" "b" "" "c"]
//	stringx.SplitString("a,b,", ',')   // ["a" "b"]
//	stringx.SplitString("", ',')       // []
//
// # Tokenizing
//
// Tokenize breaks a line on runs of whitespace. TokenizeColumns cuts
// fixed-width fields described by ColumnSpec values; offsets and lengths
// count bytes and are clamped to the line instead of failing.
//
//	specs, _ := stringx.ParseColumnSpecs("0:3,3:3")
//	stringx.TokenizeColumns("abcdef", specs) // ["abc" "def"]
//
// All functions are pure and safe for concurrent use.
package stringx
