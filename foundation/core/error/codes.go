// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by the textio packages. Codes
//              let callers branch on the failure class without parsing the
//              caller-supplied error message.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Narrowed to file, input and configuration codes
// - 2026-10-20 v0.2.1: Removed codes no package raises

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// File access
	CodeFileOpen Code = "FILE_OPEN_FAILED"
	CodeFileRead Code = "FILE_READ_FAILED"

	// Configuration
	CodeConfigNotFound Code = "CONFIG_NOT_FOUND"
	CodeInvalidConfig  Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
