package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies application errors for transport-level mapping.
type Code string

const (
	CodeValidation Code = "validation"
	CodeGate       Code = "gate"
	CodeNotFound   Code = "not_found"
	CodeForbidden  Code = "forbidden"
	CodeDelivery   Code = "delivery"
)

// Error — ошибка приложения с кодом и, для валидации, пополевыми сообщениями.
type Error struct {
	Code    Code
	Message string
	// Fields: field name -> human-readable problem (validation only).
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for k, v := range e.Fields {
		parts = append(parts, k+": "+v)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with formatting.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps the cause reachable via errors.Unwrap.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Validation builds a field-level validation error.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// FieldsOf returns field-level messages if err is a validation error.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
