package types

import (
	"fmt"
	"net/http"
)

// Error type tags carried on the wire in the "type" field.
const (
	TypeNotFound   = "NotFound"
	TypeForeignKey = "ForeignKeyError"
	TypeDuplicate  = "DuplicateError"
	TypeValidation = "ValidationError"
	TypeSeed       = "SeedError"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Err     error  `json:"-"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is matches any CustomError of the same type, so the sentinels below work with errors.Is.
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

var (
	ErrNotFound   = &CustomError{Code: http.StatusNotFound, Message: "not found", Type: TypeNotFound}
	ErrForeignKey = &CustomError{Code: http.StatusBadRequest, Message: "foreign key violation", Type: TypeForeignKey}
	ErrDuplicate  = &CustomError{Code: http.StatusBadRequest, Message: "duplicate value", Type: TypeDuplicate}
	ErrValidation = &CustomError{Code: http.StatusBadRequest, Message: "validation failed", Type: TypeValidation}
	ErrSeed       = &CustomError{Code: http.StatusInternalServerError, Message: "seed failed", Type: TypeSeed}
)

func NotFound(format string, args ...any) error {
	return &CustomError{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...), Type: TypeNotFound}
}

func ForeignKey(format string, args ...any) error {
	return &CustomError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Type: TypeForeignKey}
}

func Duplicate(format string, args ...any) error {
	return &CustomError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Type: TypeDuplicate}
}

func Validation(format string, args ...any) error {
	return &CustomError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...), Type: TypeValidation}
}

// Seed wraps the error that stopped the fixture loader at the named step.
func Seed(step string, err error) error {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("seed failed at %s: %v", step, err),
		Type:    TypeSeed,
		Err:     err,
	}
}
