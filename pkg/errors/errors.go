package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Target errors
	ErrTargetNotFound   ErrorCode = "TARGET_NOT_FOUND"
	ErrTargetUnreadable ErrorCode = "TARGET_UNREADABLE"
	ErrTargetUnknown    ErrorCode = "TARGET_UNKNOWN_KIND"

	// Patch errors
	ErrUnrecognizedShape ErrorCode = "UNRECOGNIZED_SHAPE"
	ErrUnsafeReplacement ErrorCode = "UNSAFE_REPLACEMENT"
	ErrLengthInvariant   ErrorCode = "LENGTH_INVARIANT"

	// Backup errors
	ErrBackupCreate  ErrorCode = "BACKUP_CREATE"
	ErrBackupMissing ErrorCode = "BACKUP_MISSING"
	ErrBackupRestore ErrorCode = "BACKUP_RESTORE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// Code signing errors
	ErrCodesign ErrorCode = "CODESIGN"
)

// TweakError represents a structured error with code and details
type TweakError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TweakError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TweakError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TweakError) Is(target error) bool {
	var targetErr *TweakError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TweakError with the given code and message
func New(code ErrorCode, message string) *TweakError {
	return &TweakError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TweakError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TweakError {
	return &TweakError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TweakError
func Wrap(err error, code ErrorCode, message string) *TweakError {
	if err == nil {
		return nil
	}
	return &TweakError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TweakError {
	if err == nil {
		return nil
	}
	return &TweakError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TweakError) WithDetail(key string, value interface{}) *TweakError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TweakError) WithDetails(details map[string]interface{}) *TweakError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tweakErr *TweakError
	if errors.As(err, &tweakErr) {
		return tweakErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TweakError
func GetErrorCode(err error) ErrorCode {
	var tweakErr *TweakError
	if errors.As(err, &tweakErr) {
		return tweakErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TweakError
func GetErrorDetails(err error) map[string]interface{} {
	var tweakErr *TweakError
	if errors.As(err, &tweakErr) {
		return tweakErr.Details
	}
	return nil
}
