package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrBusinessRule indicates that the request was well formed but violates a business rule.
var ErrBusinessRule = errors.New("business rule violation")

// ErrInternal indicates an unexpected failure that must not be surfaced verbatim.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code together with the underlying cause.
// Repositories use it for infrastructure failures.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodedError is a named failure with a stable machine-readable code.
// It unwraps to its category so callers can match either the precise
// rule (errors.Is(err, ErrInsufficientFunds)) or the family (ErrBusinessRule).
type CodedError struct {
	Category error
	Code     string
	Message  string
}

func (e *CodedError) Error() string {
	return e.Message
}

func (e *CodedError) Unwrap() error {
	return e.Category
}

func newCoded(category error, code, message string) *CodedError {
	return &CodedError{Category: category, Code: code, Message: message}
}
