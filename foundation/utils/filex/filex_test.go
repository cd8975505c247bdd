// File: filex_test.go
// Title: File Utilities Tests
// Description: Test suite for file reading, comment filtering, existence
//              checks and glob expansion, including error contract checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-19 v0.2.0: Tests for caller-supplied error messages and globbing

package filex

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tioerror "github.com/JoyPoint/textio/foundation/core/error"
	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
)

// setupTestDir creates a temporary directory with test files
func setupTestDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	testFiles := map[string]string{
		"test.txt":            "Hello, World!\nThis is a test file.\n",
		"empty.txt":           "",
		"comments.txt":        "line1\n#comment\n\nline2\n",
		"noeol.txt":           "first\nlast",
		"crlf.txt":            "a\r\nb\r\n",
		"mixed.txt":           "% header\n! note\ndata 1\n  indented\n#x\n",
		"data/a.dat":          "1 2 3\n",
		"data/sub/b.dat":      "4 5 6\n",
		"data/sub/deep/c.dat": "7 8 9\n",
		"data/readme.md":      "not data\n",
	}

	for path, content := range testFiles {
		fullPath := filepath.Join(tmpDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", fullPath, err)
		}
	}

	return tmpDir
}

// ===============================
// File Reading Tests
// ===============================

func TestReadFile(t *testing.T) {
	tmpDir := setupTestDir(t)

	testCases := []struct {
		name     string
		file     string
		expected string
	}{
		{"text file", "test.txt", "Hello, World!\nThis is a test file.\n"},
		{"empty file", "empty.txt", ""},
		{"no final newline", "noeol.txt", "first\nlast"},
		{"crlf preserved", "crlf.txt", "a\r\nb\r\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := ReadFile(filepath.Join(tmpDir, tc.file), "cannot open")
			if err != nil {
				t.Fatalf("ReadFile() failed: %v", err)
			}
			if content != tc.expected {
				t.Errorf("ReadFile() = %q, want %q", content, tc.expected)
			}
		})
	}
}

func TestReadFileLarge(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "large.txt")
	expected := strings.Repeat("0123456789 abcdefghij\n", 10000)
	if err := os.WriteFile(path, []byte(expected), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	content, err := ReadFile(path, "cannot open")
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if content != expected {
		t.Errorf("ReadFile() returned %d bytes, want %d", len(content), len(expected))
	}
}

func TestReadFileOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	message := "Cannot open instrument file"

	content, err := ReadFile(path, message)
	if err == nil {
		t.Fatal("ReadFile() expected error for missing file")
	}
	if content != "" {
		t.Errorf("ReadFile() content = %q, want empty", content)
	}
	if err.Error() != message {
		t.Errorf("Error() = %q, want %q", err.Error(), message)
	}
	if !tioerrors.IsFileOpenError(err) {
		t.Error("IsFileOpenError() = false")
	}
	if got := tioerrors.ExtractPath(err); got != path {
		t.Errorf("ExtractPath() = %q, want %q", got, path)
	}
	if got := tioerrors.ExtractModule(err); got != tioerrors.ModuleFilex {
		t.Errorf("ExtractModule() = %q, want %q", got, tioerrors.ModuleFilex)
	}
}

func TestReadFileDirectory(t *testing.T) {
	_, err := ReadFile(t.TempDir(), "cannot open")
	if err == nil {
		t.Fatal("ReadFile() expected error for directory")
	}
	if !tioerrors.IsFileReadError(err) {
		t.Errorf("error code = %v, want FILE_READ_FAILED", tioerror.GetCode(err))
	}
}

func TestReadLines(t *testing.T) {
	tmpDir := setupTestDir(t)

	testCases := []struct {
		name         string
		file         string
		commentChars string
		expected     []string
	}{
		{"comments and blanks skipped", "comments.txt", "#", []string{"line1", "line2"}},
		{"no comment chars", "comments.txt", "", []string{"line1", "#comment", "line2"}},
		{"final line kept", "noeol.txt", "#", []string{"first", "last"}},
		{"empty file", "empty.txt", "#", []string{}},
		{"carriage return kept", "crlf.txt", "", []string{"a\r", "b\r"}},
		{"several comment chars", "mixed.txt", "%!#", []string{"data 1", "  indented"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := ReadLines(filepath.Join(tmpDir, tc.file), tc.commentChars, "cannot open")
			if err != nil {
				t.Fatalf("ReadLines() failed: %v", err)
			}
			if lines == nil {
				t.Fatal("ReadLines() returned nil slice")
			}
			if !reflect.DeepEqual(lines, tc.expected) {
				t.Errorf("ReadLines() = %q, want %q", lines, tc.expected)
			}
		})
	}
}

func TestReadLinesOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	lines, err := ReadLines(path, "#", "Cannot open array file")
	if err == nil {
		t.Fatal("ReadLines() expected error for missing file")
	}
	if lines != nil {
		t.Errorf("ReadLines() = %q, want nil", lines)
	}
	if err.Error() != "Cannot open array file" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !tioerrors.IsFileOpenError(err) {
		t.Error("IsFileOpenError() = false")
	}
}

// ===============================
// File Existence Tests
// ===============================

func TestFileExists(t *testing.T) {
	tmpDir := setupTestDir(t)

	written := filepath.Join(tmpDir, "written.txt")
	file, err := os.Create(written)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	file.Close()

	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{"written and closed", written, true},
		{"existing file", filepath.Join(tmpDir, "test.txt"), true},
		{"non-existing file", filepath.Join(tmpDir, "nonexistent.txt"), false},
		{"non-existing directory", filepath.Join(tmpDir, "nonexistent", "x.txt"), false},
		{"empty path", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FileExists(tc.path); got != tc.expected {
				t.Errorf("FileExists(%s) = %v, want %v", tc.path, got, tc.expected)
			}
		})
	}
}

// ===============================
// Pattern Matching Tests
// ===============================

func TestGlob(t *testing.T) {
	tmpDir := setupTestDir(t)
	data := filepath.Join(tmpDir, "data")

	testCases := []struct {
		name     string
		patterns []string
		expected []string
	}{
		{
			"single level",
			[]string{filepath.Join(data, "*.dat")},
			[]string{filepath.Join(data, "a.dat")},
		},
		{
			"recursive",
			[]string{filepath.Join(data, "**", "*.dat")},
			[]string{
				filepath.Join(data, "a.dat"),
				filepath.Join(data, "sub", "b.dat"),
				filepath.Join(data, "sub", "deep", "c.dat"),
			},
		},
		{
			"literal passed through",
			[]string{filepath.Join(tmpDir, "missing.txt")},
			[]string{filepath.Join(tmpDir, "missing.txt")},
		},
		{
			"duplicates removed, pattern order kept",
			[]string{filepath.Join(data, "readme.md"), filepath.Join(data, "*.*")},
			[]string{filepath.Join(data, "readme.md"), filepath.Join(data, "a.dat")},
		},
		{
			"no matches",
			[]string{filepath.Join(data, "*.none")},
			[]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Glob(tc.patterns...)
			if err != nil {
				t.Fatalf("Glob() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Glob() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestGlobInvalid(t *testing.T) {
	for _, pattern := range []string{"", filepath.Join(t.TempDir(), "[")} {
		_, err := Glob(pattern)
		if err == nil {
			t.Errorf("Glob(%q) expected error", pattern)
			continue
		}
		if !tioerror.HasCode(err, tioerror.CodeInvalidInput) {
			t.Errorf("Glob(%q) code = %v, want INVALID_INPUT", pattern, tioerror.GetCode(err))
		}
	}
}

func TestHasMeta(t *testing.T) {
	if HasMeta("plain/path.txt") || !HasMeta("*.txt") || !HasMeta("a/**/b") || !HasMeta("f[0-9]") {
		t.Error("HasMeta mismatch")
	}
}
