// Package errors defines the application error taxonomy. Every error the
// delivery layer can map to an HTTP response is an AppError carrying both an
// HTTP status and a stable business error code.
package errors

import (
	"net/http"

	"subul/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
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

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication and authorization
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing, malformed, or expired credentials",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DEACTIVATED",
		"This account has been deactivated",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to access this resource",
		"",
	)

	// User
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Merchant
	ErrMerchantNotFound = NewBaseError(
		http.StatusNotFound,
		"MERCHANT_NOT_FOUND",
		"Merchant not found",
		"",
	)

	ErrMerchantAlreadyExists = NewBaseError(
		http.StatusConflict,
		"MERCHANT_ALREADY_EXISTS",
		"A merchant is already registered for this account",
		"",
	)

	// Product
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// Inventory
	ErrInventoryNotFound = NewBaseError(
		http.StatusNotFound,
		"INVENTORY_NOT_FOUND",
		"Inventory not found",
		"",
	)

	// Order
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"An order requires at least one item",
		"",
	)

	// Delivery
	ErrDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_NOT_FOUND",
		"Delivery not found",
		"",
	)

	// Payment
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	// Notification
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Partial updates
	ErrNoFieldsToUpdate = NewBaseError(
		http.StatusBadRequest,
		"NO_FIELDS_TO_UPDATE",
		"The update contains no updatable fields",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
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

// Unwrap exposes the underlying driver error.
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
