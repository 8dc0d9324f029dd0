package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is implemented by every error the application raises on purpose.
// Handlers only ever look at Category and HTTPStatus, never at the message text.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// Error categories. The set is closed: MapToHTTPStatus reports anything else
// as CategoryUnknown.
const (
	CategoryValidation         = "VALIDATION_ERROR"
	CategoryInvalidCredentials = "INVALID_CREDENTIALS"
	CategoryUnauthorized       = "UNAUTHORIZED"
	CategoryForbidden          = "FORBIDDEN"
	CategoryNotFound           = "NOT_FOUND"
	CategoryConflict           = "CONFLICT"
	CategoryRateLimited        = "RATE_LIMITED"
	CategoryInternal           = "INTERNAL_ERROR"
	CategoryUnknown            = "UNKNOWN_ERROR"
)

// --- Domain errors ---

// ValidationError means the request payload is malformed or incomplete.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return e.Msg }
func (e *ValidationError) Category() string { return CategoryValidation }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// InvalidCredentialsError is returned by every failed login, whatever the reason.
type InvalidCredentialsError struct {
	Msg string
}

func (e *InvalidCredentialsError) Error() string    { return e.Msg }
func (e *InvalidCredentialsError) Category() string { return CategoryInvalidCredentials }
func (e *InvalidCredentialsError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *InvalidCredentialsError) Unwrap() error    { return nil }

// NewInvalidCredentialsError uses the same message for unknown accounts and
// wrong passwords.
func NewInvalidCredentialsError() AppError {
	return &InvalidCredentialsError{Msg: "Invalid email or password"}
}

// UnauthorizedError means the request carries no usable identity.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return e.Msg }
func (e *UnauthorizedError) Category() string { return CategoryUnauthorized }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError means the caller is known but may not touch the resource,
// e.g. a user mutating a recipe they do not own.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return e.Msg }
func (e *ForbiddenError) Category() string { return CategoryForbidden }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden }
func (e *ForbiddenError) Unwrap() error    { return nil }

func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return CategoryNotFound }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError represents a uniqueness violation or a concurrent modification.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return e.Msg }
func (e *ConflictError) Category() string { return CategoryConflict }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return nil }

func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// RateLimitError is raised by the rate limiter middleware.
type RateLimitError struct {
	Msg string
}

func (e *RateLimitError) Error() string    { return e.Msg }
func (e *RateLimitError) Category() string { return CategoryRateLimited }
func (e *RateLimitError) HTTPStatus() int  { return http.StatusTooManyRequests }
func (e *RateLimitError) Unwrap() error    { return nil }

func NewRateLimitError(msg string) AppError {
	return &RateLimitError{Msg: msg}
}

// --- Infrastructure errors ---

// InternalError wraps an unexpected failure of the server, a dependency or the DB.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("internal error: %s", e.Msg)
	}
	return fmt.Sprintf("internal error: %s: %v", e.Msg, e.Err)
}
func (e *InternalError) Category() string { return CategoryInternal }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError is a shortcut for an InternalError caused by the database.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(msg+" (DB)", err)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// --- Translation for handlers ---

const genericServerMessage = "An unexpected error occurred."

// MapToHTTPStatus translates err into the status code, category and message
// of the error body. Server-side failures never leak their cause.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			return status, appErr.Category(), genericServerMessage
		}
		return status, appErr.Category(), appErr.Error()
	}

	return http.StatusInternalServerError, CategoryUnknown, genericServerMessage
}
