// Package errors provides unified error handling across the nameit system.
//
// It standardizes error representation for the template parser, the history
// store, the renderer and the file operations, and classifies every error as
// either fatal (abort the run) or recoverable (re-prompt or skip the file).
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Template errors
	ErrCodeParse             ErrorCode = "PARSE_ERROR"
	ErrCodeInvalidDateFormat ErrorCode = "INVALID_DATE_FORMAT"

	// Interactive input errors
	ErrCodeInvalidRange  ErrorCode = "INVALID_RANGE"
	ErrCodeInvalidChoice ErrorCode = "INVALID_CHOICE"
	ErrCodeCanceled      ErrorCode = "CANCELED"

	// Store errors
	ErrCodeStorageFailure ErrorCode = "STORAGE_FAILURE"
	ErrCodeFileCorrupted  ErrorCode = "FILE_CORRUPTED"

	// File operation errors
	ErrCodeFileOperation ErrorCode = "FILE_OPERATION_FAILED"
	ErrCodeNameCollision ErrorCode = "NAME_COLLISION"

	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	CategoryTemplate ErrorCategory = "template"
	CategoryInput    ErrorCategory = "input"
	CategoryStorage  ErrorCategory = "storage"
	CategoryFile     ErrorCategory = "file"
	CategorySystem   ErrorCategory = "system"
)

// AppError represents a standardized application error
type AppError struct {
	Code        ErrorCode     `json:"code"`
	Message     string        `json:"message"`
	Details     string        `json:"details,omitempty"`
	Severity    ErrorSeverity `json:"severity"`
	Category    ErrorCategory `json:"category"`
	Cause       error         `json:"-"`
	Timestamp   time.Time     `json:"timestamp"`
	Recoverable bool          `json:"recoverable"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsRecoverable reports whether the run may continue after this error.
func (e *AppError) IsRecoverable() bool {
	return e.Recoverable
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:        code,
		Message:     message,
		Severity:    severity,
		Category:    category,
		Timestamp:   time.Now(),
		Recoverable: isRecoverable(code),
	}
}

// Wrap wraps an existing error with application error context
func Wrap(err error, code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:        code,
		Message:     message,
		Severity:    severity,
		Category:    category,
		Cause:       err,
		Timestamp:   time.Now(),
		Recoverable: isRecoverable(code),
	}
}

// categorizeError determines the category and severity based on error code
func categorizeError(code ErrorCode) (ErrorCategory, ErrorSeverity) {
	switch code {
	case ErrCodeParse, ErrCodeInvalidDateFormat:
		return CategoryTemplate, SeverityCritical

	case ErrCodeInvalidRange, ErrCodeInvalidChoice, ErrCodeInvalidInput:
		return CategoryInput, SeverityWarning
	case ErrCodeCanceled:
		return CategoryInput, SeverityInfo

	case ErrCodeStorageFailure, ErrCodeFileCorrupted:
		return CategoryStorage, SeverityCritical

	case ErrCodeFileOperation:
		return CategoryFile, SeverityError
	case ErrCodeNameCollision:
		return CategoryFile, SeverityWarning

	default:
		return CategorySystem, SeverityError
	}
}

// isRecoverable determines if processing can continue after an error code
func isRecoverable(code ErrorCode) bool {
	switch code {
	case ErrCodeInvalidRange, ErrCodeInvalidChoice, ErrCodeInvalidInput:
		return true
	case ErrCodeFileOperation, ErrCodeNameCollision:
		return true
	default:
		return false
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts an AppError from an error, or converts it to one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeInternalError, "Internal error occurred")
}

// IsCanceled reports whether err marks a user-initiated cancellation.
func IsCanceled(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeCanceled
}

// Common error constructors for frequently used errors

func ParseError(detail string) *AppError {
	return NewAppError(ErrCodeParse, "invalid format").WithDetails(detail)
}

func DateFormatError(pattern string, err error) *AppError {
	return Wrap(err, ErrCodeInvalidDateFormat, fmt.Sprintf("invalid date pattern %q", pattern))
}

func Canceled() *AppError {
	return NewAppError(ErrCodeCanceled, "canceled by user")
}

func InvalidChoiceError(input string, max int) *AppError {
	return NewAppError(ErrCodeInvalidChoice, fmt.Sprintf("enter a number from 0 to %d, or /text", max)).
		WithDetails(fmt.Sprintf("got %q", input))
}

func InvalidRangeError(input string) *AppError {
	return NewAppError(ErrCodeInvalidRange, fmt.Sprintf("invalid range expression %q", input))
}

func StorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorageFailure, fmt.Sprintf("storage operation failed: %s", operation))
}

func CorruptStoreError(path string, err error) *AppError {
	return Wrap(err, ErrCodeFileCorrupted, fmt.Sprintf("history store %s is corrupt", path))
}

func FileOperationError(operation, path string, err error) *AppError {
	return Wrap(err, ErrCodeFileOperation, fmt.Sprintf("%s failed for %s", operation, path))
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternalError, message)
}
