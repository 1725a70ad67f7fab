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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Template errors
	ErrTemplateSyntax ErrorCode = "TEMPLATE_SYNTAX"
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Identity errors
	ErrIdentity ErrorCode = "IDENTITY"

	// Project name errors
	ErrNameInvalid ErrorCode = "NAME_INVALID"

	// FileSystem errors
	ErrFileRead    ErrorCode = "FILE_READ"
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrFileRename  ErrorCode = "FILE_RENAME"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrPathResolve ErrorCode = "PATH_RESOLVE"
)

// MasonError represents a structured error with code and details
type MasonError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MasonError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MasonError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MasonError) Is(target error) bool {
	var targetErr *MasonError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail field to the error and returns it for chaining
func (e *MasonError) WithDetail(key string, value interface{}) *MasonError {
	e.Details[key] = value
	return e
}

// New creates a new MasonError with the given code and message
func New(code ErrorCode, message string) *MasonError {
	return &MasonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MasonError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MasonError {
	return &MasonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MasonError
func Wrap(err error, code ErrorCode, message string) *MasonError {
	if err == nil {
		return nil
	}
	return &MasonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MasonError {
	if err == nil {
		return nil
	}
	return &MasonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not MasonErrors
func GetCode(err error) ErrorCode {
	var masonErr *MasonError
	if errors.As(err, &masonErr) {
		return masonErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
