// File: stringx_test.go
// Title: Unit Tests for stringx
// Description: Table-driven tests for splitting, stripping, tokenizing and
//              column specification parsing, including the pinned edge
//              case conventions.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.3.0: Tests for text data helpers

package stringx

import (
	"reflect"
	"testing"

	tioerror "github.com/JoyPoint/textio/foundation/core/error"
)

func TestIsSpace(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		if !IsSpace(b) {
			t.Errorf("IsSpace(%q) = false", b)
		}
	}
	for _, b := range []byte{'a', '0', '_', 0x00, 0xA0, 0x85} {
		if IsSpace(b) {
			t.Errorf("IsSpace(%q) = true", b)
		}
	}
}

func TestIsBlankAndFirstNonEmpty(t *testing.T) {
	if !IsBlank("") || !IsBlank(" \t\r\n") || IsBlank(" x ") {
		t.Error("IsBlank mismatch")
	}
	if got := FirstNonEmpty("", "", "#", "%"); got != "#" {
		t.Errorf("FirstNonEmpty() = %q", got)
	}
	if got := FirstNonEmpty(); got != "" {
		t.Errorf("FirstNonEmpty() = %q", got)
	}
	if !ContainsByte("#%!", '%') || ContainsByte("#%!", 'a') || ContainsByte("", '#') {
		t.Error("ContainsByte mismatch")
	}
}

func TestSplitString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delim rune
		want  []string
	}{
		{"empty segments kept", "a,b,,c", ',', []string{"a", "b", "", "c"}},
		{"empty input", "", ',', []string{}},
		{"no delimiter", "abc", ',', []string{"abc"}},
		{"only delimiter", ",", ',', []string{""}},
		{"leading delimiter", ",a", ',', []string{"", "a"}},
		{"trailing delimiter", "a,b,", ',', []string{"a", "b"}},
		{"double trailing delimiter", "a,,", ',', []string{"a", ""}},
		{"space delimiter", "1.0 2.0  3.0", ' ', []string{"1.0", "2.0", "", "3.0"}},
		{"multibyte delimiter", "x→y→z", '→', []string{"x", "y", "z"}},
		{"latin-1 rune matches its utf-8 form", "aÿb", 'ÿ', []string{"a", "b"}},
		{"raw high byte is not a delimiter", "a\xffb", rune(0xff), []string{"a\xffb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitString(tt.input, tt.delim)
			if got == nil {
				t.Fatal("SplitString() returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitString(%q, %q) = %q, want %q", tt.input, tt.delim, got, tt.want)
			}
		})
	}
}

func TestAppendSplit(t *testing.T) {
	dst := []string{"existing"}
	got := AppendSplit(dst, "u;v", ';')

	want := []string{"existing", "u", "v"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendSplit() = %q, want %q", got, want)
	}

	if got := AppendSplit(nil, "", ';'); len(got) != 0 {
		t.Errorf("AppendSplit(nil, \"\") = %q", got)
	}
}

func TestStripWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{" a b\tc\n", "abc"},
		{"", ""},
		{"abc", "abc"},
		{" \t\r\n\v\f", ""},
		{"1.5 e-3", "1.5e-3"},
		{"a\u00a0b", "a\u00a0b"},
	}

	for _, tt := range tests {
		if got := StripWhitespace(tt.input); got != tt.want {
			t.Errorf("StripWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripWhitespaceAll(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"drops blanks", []string{"  ", "ab", " ", "cd "}, []string{"ab", "cd"}},
		{"consecutive blanks", []string{" ", "\t", "x", "", "y"}, []string{"x", "y"}},
		{"nothing left", []string{" ", "\n"}, []string{}},
		{"nil input", nil, []string{}},
		{"interior whitespace", []string{"a b", " c\td "}, []string{"ab", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before []string
			if tt.input != nil {
				before = append([]string(nil), tt.input...)
			}

			got := StripWhitespaceAll(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StripWhitespaceAll(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if tt.input != nil && !reflect.DeepEqual(tt.input, before) {
				t.Errorf("input modified: %q", tt.input)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"  foo   bar ", []string{"foo", "bar"}},
		{"foo bar", []string{"foo", "bar"}},
		{"", []string{}},
		{" \t ", []string{}},
		{"single", []string{"single"}},
		{"a\tb\r\nc", []string{"a", "b", "c"}},
		{"0.5 -1.25e3\t42", []string{"0.5", "-1.25e3", "42"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if got == nil {
			t.Fatalf("Tokenize(%q) returned nil", tt.input)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeColumns(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		specs []ColumnSpec
		want  []string
	}{
		{"exact fields", "abcdef", []ColumnSpec{{0, 3}, {3, 3}}, []string{"abc", "def"}},
		{"clamped length", "abc", []ColumnSpec{{1, 10}}, []string{"bc"}},
		{"start at end", "abc", []ColumnSpec{{3, 2}}, []string{""}},
		{"start past end", "abc", []ColumnSpec{{5, 2}}, []string{""}},
		{"overlapping", "abcdef", []ColumnSpec{{0, 4}, {2, 4}}, []string{"abcd", "cdef"}},
		{"out of order", "abcdef", []ColumnSpec{{4, 2}, {0, 2}}, []string{"ef", "ab"}},
		{"negative start", "abcdef", []ColumnSpec{{-2, 3}}, []string{"abc"}},
		{"negative length", "abcdef", []ColumnSpec{{1, -1}}, []string{""}},
		{"huge length", "abc", []ColumnSpec{{1, int(^uint(0) >> 1)}}, []string{"bc"}},
		{"no specs", "abc", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenizeColumns(tt.line, tt.specs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeColumns(%q, %v) = %q, want %q", tt.line, tt.specs, got, tt.want)
			}
		})
	}
}

func TestParseColumnSpecs(t *testing.T) {
	tests := []struct {
		input   string
		want    []ColumnSpec
		wantErr bool
	}{
		{"0:3,3:3", []ColumnSpec{{0, 3}, {3, 3}}, false},
		{" 0:8, 8:12 ,20:6 ", []ColumnSpec{{0, 8}, {8, 12}, {20, 6}}, false},
		{"5:1,", []ColumnSpec{{5, 1}}, false},
		{"", nil, true},
		{" , ", nil, true},
		{"0-3", nil, true},
		{"a:3", nil, true},
		{"0:x", nil, true},
		{"-1:3", nil, true},
		{"0:0", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColumnSpecs(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColumnSpecs(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !tioerror.HasCode(err, tioerror.CodeInvalidInput) {
					t.Errorf("error code = %v, want INVALID_INPUT", tioerror.GetCode(err))
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseColumnSpecs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumnSpecString(t *testing.T) {
	spec := ColumnSpec{Start: 8, Length: 12}
	if spec.String() != "8:12" || spec.End() != 20 {
		t.Errorf("String() = %q, End() = %d", spec.String(), spec.End())
	}
}
