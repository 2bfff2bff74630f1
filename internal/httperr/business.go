package httperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error every use case returns for expected
// failures. Anything else reaching the HTTP layer is treated as internal.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(fields ...FieldError) error {
	return &Error{
		Kind:    KindValidation,
		Code:    "validation_error",
		Message: "Dados inválidos.",
		Fields:  fields,
	}
}

func Unauthorized(code, message string) error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

func NotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func Internal(code string, err error) error {
	return &Error{Kind: KindInternal, Code: code, Message: "Erro interno.", Err: err}
}

// Is reports whether err carries the given application error code.
func Is(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
