// File: filex.go
// Title: Core File Utilities
// Description: Whole-file and line-oriented reading of text data files,
//              existence checks and glob expansion for the command line
//              tool. Every handle is opened and closed inside the call.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Caller-supplied open error messages, comment filtering,
//                      ** glob expansion

package filex

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	filepathx "github.com/yargevad/filepathx"

	tioerror "github.com/JoyPoint/textio/foundation/core/error"
	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
	"github.com/JoyPoint/textio/foundation/utils/stringx"
)

// ===============================
// File Reading Operations
// ===============================

// ReadFile returns the entire contents of path, bytes unchanged.
//
// If the file cannot be opened the returned error is a FileOpenError whose
// Error() is exactly errorMessage; the path is available through
// errors.ExtractPath. A failure while reading an opened file returns a
// FileReadError wrapping the OS error.
func ReadFile(path, errorMessage string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", tioerrors.FileOpen("ReadFile", path, errorMessage)
	}
	defer file.Close()

	var sb strings.Builder
	if info, err := file.Stat(); err == nil && info.Size() > 0 {
		sb.Grow(int(info.Size()))
	}

	if _, err := io.Copy(&sb, file); err != nil {
		return "", tioerrors.FileRead("ReadFile", path, err)
	}
	return sb.String(), nil
}

// ReadLines reads path and returns its lines without the terminating '\n'.
//
// A line is skipped when it is empty or when its first byte occurs in
// commentChars. A last line that has no trailing newline is kept. Only '\n'
// separates lines, so a '\r' from CRLF files stays part of the line.
// Errors are reported as for ReadFile.
func ReadLines(path, commentChars, errorMessage string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, tioerrors.FileOpen("ReadLines", path, errorMessage)
	}
	defer file.Close()

	lines := make([]string, 0, 64)
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSuffix(line, "\n")
		if keepLine(line, commentChars) {
			lines = append(lines, line)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, tioerrors.FileRead("ReadLines", path, err)
		}
	}
	return lines, nil
}

func keepLine(line, commentChars string) bool {
	return line != "" && !stringx.ContainsByte(commentChars, line[0])
}

// ===============================
// File Existence
// ===============================

// FileExists reports whether path can be opened for reading. It never
// returns an error; permission problems count as "does not exist".
func FileExists(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// ===============================
// Pattern Matching
// ===============================

// Glob expands each pattern and returns the de-duplicated union of the
// matches. Results keep pattern order; the matches of a single pattern are
// sorted. Patterns may use "**" to match any number of directories.
//
// A pattern without glob metacharacters is passed through unchanged even
// when nothing exists at that path, so that a later read reports the
// missing file instead of silently dropping it. A pattern with
// metacharacters that matches nothing contributes nothing.
func Glob(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{}, len(patterns))
	paths := make([]string, 0, len(patterns))
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		if pattern == "" {
			return nil, tioerrors.InvalidInput(tioerrors.ModuleFilex, "Glob", pattern, "a non-empty path or pattern")
		}
		if !HasMeta(pattern) {
			add(pattern)
			continue
		}

		matches, err := filepathx.Glob(pattern)
		if errors.Is(err, filepath.ErrBadPattern) {
			return nil, tioerrors.NewErrorBuilder(tioerrors.ModuleFilex).
				Operation("Glob").
				Messagef("invalid glob pattern %q", pattern).
				Cause(err).
				Code(tioerror.CodeInvalidInput).
				Detail("input", pattern).
				Build()
		}
		if err != nil {
			return nil, tioerrors.FileRead("Glob", pattern, err)
		}
		sort.Strings(matches)
		for _, match := range matches {
			add(match)
		}
	}
	return paths, nil
}

// HasMeta reports whether pattern contains any of the glob metacharacters
// recognised by Glob.
func HasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[\`)
}
