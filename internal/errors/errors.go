package errors

import "errors"

// Code identifies a structured error type used across the application.
type Code string

const (
	// Generic codes
	CodeUnknown Code = "unknown"

	// Decoder errors
	CodeShape             Code = "invalid_shape"
	CodeTypeMismatch      Code = "type_mismatch"
	CodeUnknownValueShape Code = "unknown_value_shape"

	// Assembler and model errors
	CodeMissingPaletteKey Code = "missing_palette_key"
	CodeInvalidColor      Code = "invalid_color"
	CodeInvalidFontStyle  Code = "invalid_font_style"

	// IO and tooling errors
	CodeParseFailed        Code = "parse_failed"
	CodeNotFound           Code = "not_found"
	CodeConfigurationError Code = "configuration_error"
	CodeCacheFailed        Code = "cache_failed"
)

// Error represents a structured error with a machine-readable code plus message.
// Subject names the offending literal: a rule name, a scope path or a palette key.
type Error struct {
	Code    Code
	Subject string
	Message string
	Err     error
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// New wraps an error with a code/message.
func New(code Code, msg string, err error) Error {
	return Error{Code: code, Message: msg, Err: err}
}

// NewSubject is New with the offending subject attached.
func NewSubject(code Code, subject, msg string, err error) Error {
	return Error{Code: code, Subject: subject, Message: msg, Err: err}
}

// CodeOf walks the error chain and returns the first structured code found.
func CodeOf(err error) Code {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Code
	}
	return CodeUnknown
}

// SubjectOf returns the subject of the first structured error in the chain.
func SubjectOf(err error) string {
	var structured Error
	if errors.As(err, &structured) {
		return structured.Subject
	}
	return ""
}

// IsCode reports whether the error (or its unwrap chain) matches the provided code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
