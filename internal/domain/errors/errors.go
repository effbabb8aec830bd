// Package errors holds the failure taxonomy of the shopping domain.
// Every failure carries a stable status code that clients depend on;
// the HTTP layer maps it 1:1 to a response.
package errors

import (
	"fmt"
	"net/http"

	"mart/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Stable status code, e.g. "AUTH-401"
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	contract  bool
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// newContractViolation creates an error signalling a caller bug rather than bad input.
func newContractViolation(errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  http.StatusInternalServerError,
		errorCode: errorCode,
		message:   message,
		contract:  true,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same status code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the stable status code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// IsContractViolation reports whether the error marks a programming bug
// (for example a nil product handed to a cart) instead of invalid user input.
func (e *BaseError) IsContractViolation() bool {
	return e.contract
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		contract:  e.contract,
	}
}

// WithDetailsf is WithDetails with a format specifier.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// User-related errors
var (
	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"AUTH-401",
		"email cannot be used",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"AUTH-402",
		"password must be 8 to 100 characters long and contain a special character",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTH-403",
		"email or password does not match",
		"",
	)

	ErrDuplicatedEmail = NewBaseError(
		http.StatusBadRequest,
		"AUTH-404",
		"email is already registered",
		"",
	)

	// ErrEmailNotFound shares its message with ErrLoginFailed so that a
	// response never reveals whether an account exists.
	ErrEmailNotFound = NewBaseError(
		http.StatusUnauthorized,
		"AUTH-405",
		"email or password does not match",
		"",
	)
)

// Product-related errors
var (
	ErrNullName = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT-401",
		"name cannot be null",
		"",
	)

	ErrExceedName = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT-402",
		"name cannot be longer than 20 characters",
		"",
	)

	ErrBlankName = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT-403",
		"name cannot be blank",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT-404",
		"price must be a non-negative integer",
		"",
	)
)

// Cart-related errors
var (
	ErrProductAlreadyInCart = NewBaseError(
		http.StatusBadRequest,
		"CART-401",
		"product already exists in cart",
		"",
	)

	ErrNonPositiveCount = NewBaseError(
		http.StatusBadRequest,
		"CART-402",
		"count must be greater than 0",
		"",
	)

	ErrUpdatableProductNotInCart = NewBaseError(
		http.StatusBadRequest,
		"CART-403",
		"product to update is not in cart",
		"",
	)

	ErrDeletableProductNotInCart = NewBaseError(
		http.StatusBadRequest,
		"CART-404",
		"product to delete is not in cart",
		"",
	)

	ErrNullProduct = newContractViolation(
		"CART-500",
		"product cannot be nil",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"CART-SERVICE-401",
		"product not found",
		"",
	)

	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART-SERVICE-402",
		"cart not found",
		"",
	)
)

// Order-related errors
var (
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"ORDER-401",
		"cart has no products to order",
		"",
	)

	ErrTooManyUnits = NewBaseError(
		http.StatusBadRequest,
		"ORDER-402",
		"order exceeds the maximum number of units",
		"",
	)

	ErrTotalPriceUnavailable = newContractViolation(
		"ORDER-500",
		"total price cannot be calculated for an empty cart",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER-SERVICE-401",
		"order not found",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
