// Package filex implements file reading utilities for line-oriented text data.
//
// Package: filex
// Title: File Reading for Text Data Files
// Description: This package reads whole files and comment-filtered line
//              lists, checks whether paths can be opened and expands glob
//              patterns for the textio command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-19 v0.2.0: Reduced to the text data reading surface
//
// Package Overview:
//
// # File Reading
//
//   - ReadFile: entire file as a string, bytes unchanged
//   - ReadLines: lines without '\n', blank and comment lines removed
//
// Both take an errorMessage argument. When the file cannot be opened the
// returned error's Error() is exactly that message, so callers decide the
// wording users see:
//
//	lines, err := filex.ReadLines("array.txt", "#%", "Cannot open array description")
//	if err != nil {
//		if errors.IsFileOpenError(err) {
//			fmt.Fprintln(os.Stderr, err) // Cannot open array description
//		}
//		return err
//	}
//
// A line counts as a comment when its first byte is one of commentChars.
// Leading whitespace is not skipped, so "  # x" is data.
//
// # Existence and Patterns
//
//   - FileExists: true iff the path can be opened for reading
//   - Glob: expands patterns, including "**" for any directory depth
//
// # Thread Safety
//
// All functions open and close their own handles and share no state; they
// are safe for concurrent use.
package filex
