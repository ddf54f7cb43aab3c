// Package errors provides structured error handling with typed error codes.
//
// Error codes are organized into categories:
//   - General errors (1-99): Unknown and general errors
//   - Configuration errors (100-199): Unreadable, malformed or invalid configuration
//   - Filesystem errors (200-299): Log directory creation and log file append failures
//   - Feed errors (300-399): Invalid quote feed settings
//
// Usage:
//
//	// Create a new error
//	err := errors.New(errors.ErrCodeInvalidConfiguration, "log_dir is required")
//
//	// Create a formatted error
//	err := errors.Newf(errors.ErrCodeInvalidTimezone, "unknown timezone %s", name)
//
//	// Wrap an existing error
//	err := errors.Wrap(errors.ErrCodeConfigReadFailed, "failed to read config", originalErr)
//
//	// Check error code
//	if errors.HasCode(err, errors.ErrCodeLogFileAppendFailed) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error is a coded failure raised by configuration loading, log persistence
// or the quote feed. Cause is optional.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New returns an Error without a cause.
func New(code ErrorCode, message string) *Error {
	return Wrap(code, message, nil)
}

// Newf is New with a fmt format.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf is Wrap with a fmt format.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// Error renders "[code] message", followed by ": cause" when there is one.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%d] %s", e.Code, e.Message)
	if e.Cause == nil {
		return msg
	}

	return msg + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is and As forward to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain, or
// ErrCodeUnknown when the chain has none.
func GetCode(err error) ErrorCode {
	var coded *Error
	if !errors.As(err, &coded) {
		return ErrCodeUnknown
	}

	return coded.Code
}

// HasCode reports whether GetCode(err) is code.
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// LogFileError describes a failed attempt to persist a log line to disk.
type LogFileError struct {
	Code     ErrorCode // ErrCodeLogDirCreateFailed, ErrCodeLogFileOpenFailed or ErrCodeLogFileAppendFailed
	Path     string    // File or directory the operation targeted
	BySymbol bool      // True when the file was selected by the symbol route
	Cause    error
}

// NewLogFileError creates a new LogFileError.
func NewLogFileError(code ErrorCode, path string, bySymbol bool, cause error) *LogFileError {
	return &LogFileError{
		Code:     code,
		Path:     path,
		BySymbol: bySymbol,
		Cause:    cause,
	}
}

// Error implements the error interface.
func (e *LogFileError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Path, e.Cause)
}

// Unwrap returns the underlying error cause.
func (e *LogFileError) Unwrap() error {
	return e.Cause
}

// IsLogFileError checks if an error is a LogFileError.
// It uses errors.As to check the error chain.
func IsLogFileError(err error) bool {
	var fileErr *LogFileError

	return errors.As(err, &fileErr)
}
