// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels when an error is reported.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-20
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for file and config codes
// - 2026-10-20 v0.2.1: Dropped alert threshold

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as malformed input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation the caller can recover from
	SeverityMedium

	// SeverityHigh indicates a failure that stops the current command
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeFileRead, CodeInvalidConfig:
		return SeverityHigh

	case CodeFileOpen, CodeConfigNotFound:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
