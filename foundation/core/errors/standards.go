// File: standards.go
// Title: Standard Error Constructors
// Description: Module identifiers and the constructors every textio package
//              uses to raise errors, so that codes, operations and details
//              are filled in the same way everywhere.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: File open/read constructors, builder kept for config

package errors

import (
	"errors"
	"fmt"

	tioerror "github.com/JoyPoint/textio/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleFilex   = "filex"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	code      tioerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    tioerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code tioerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tioerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *tioerror.Error
	if eb.cause != nil {
		err = tioerror.Wrap(eb.cause, eb.message)
	} else {
		err = tioerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	return err
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// FileOpen creates the error raised when a path cannot be opened for reading.
// Error() returns message unchanged; the OS error is intentionally not attached.
func FileOpen(operation, path, message string) *tioerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Message(message).
		Code(tioerror.CodeFileOpen).
		Detail("path", path).
		Build()
}

// FileRead creates the error raised when reading an already opened file fails
func FileRead(operation, path string, cause error) *tioerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Messagef("failed to read %s", path).
		Cause(cause).
		Code(tioerror.CodeFileRead).
		Detail("path", path).
		Build()
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tioerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: %v (expected %s)", module, operation, input, expected).
		Code(tioerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidConfig creates a configuration validation error
func InvalidConfig(field string, value interface{}, reason string) *tioerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("invalid config value for %s: %s", field, reason).
		Code(tioerror.CodeInvalidConfig).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// ConfigNotFound creates the error for a configuration file that does not exist
func ConfigNotFound(path string) *tioerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("load").
		Messagef("config file not found: %s", path).
		Code(tioerror.CodeConfigNotFound).
		Detail("path", path).
		Build()
}

// =============================================================================
// INSPECTION
// =============================================================================

// IsFileOpenError reports whether err is, or wraps, a file open failure
func IsFileOpenError(err error) bool {
	return tioerror.HasCode(err, tioerror.CodeFileOpen)
}

// IsFileReadError reports whether err is, or wraps, a file read failure
func IsFileReadError(err error) bool {
	return tioerror.HasCode(err, tioerror.CodeFileRead)
}

// ExtractModule returns the module recorded on a structured error
func ExtractModule(err error) string {
	var e *tioerror.Error
	if errors.As(err, &e) {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractPath returns the path recorded on a file error
func ExtractPath(err error) string {
	var e *tioerror.Error
	if errors.As(err, &e) {
		if path, ok := e.Details()["path"].(string); ok {
			return path
		}
	}
	return ""
}
