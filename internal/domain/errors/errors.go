package errors

import (
	"net/http"

	"stampcard/internal/errors"
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
	// Identity-related errors
	ErrInvalidPhoneNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE_NUMBER",
		"Phone number must look like 010-1234-5678",
		"",
	)

	ErrCustomerNotRegistered = NewBaseError(
		http.StatusForbidden,
		"CUSTOMER_NOT_REGISTERED",
		"This phone number is not registered; please register in store",
		"",
	)

	ErrGuestNotAllowed = NewBaseError(
		http.StatusForbidden,
		"GUEST_NOT_ALLOWED",
		"This action requires a registered customer",
		"",
	)

	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	// Visit-related errors
	ErrVisitNotFound = NewBaseError(
		http.StatusNotFound,
		"VISIT_NOT_FOUND",
		"Visit record not found",
		"",
	)

	ErrUnknownCard = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CARD",
		"The selected card is not in the catalog",
		"",
	)

	ErrReviewTooLong = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_TOO_LONG",
		"Reviews are limited to 100 characters",
		"",
	)

	// Coupon-related errors
	ErrCouponNotFound = NewBaseError(
		http.StatusNotFound,
		"COUPON_NOT_FOUND",
		"Coupon not found",
		"",
	)

	ErrAdminSecretMismatch = NewBaseError(
		http.StatusUnauthorized,
		"ADMIN_SECRET_MISMATCH",
		"The admin secret is incorrect",
		"",
	)

	ErrCouponExpired = NewBaseError(
		http.StatusGone,
		"COUPON_EXPIRED",
		"This coupon has expired and can no longer be redeemed",
		"",
	)

	// Poll-related errors
	ErrPollNotFound = NewBaseError(
		http.StatusNotFound,
		"POLL_NOT_FOUND",
		"Poll not found",
		"",
	)

	ErrPollClosed = NewBaseError(
		http.StatusConflict,
		"POLL_CLOSED",
		"This poll is closed",
		"",
	)

	ErrEmptySelection = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_SELECTION",
		"Select at least one option",
		"",
	)

	ErrSingleChoiceOnly = NewBaseError(
		http.StatusBadRequest,
		"SINGLE_CHOICE_ONLY",
		"This poll accepts exactly one option",
		"",
	)

	ErrTooManySelections = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_SELECTIONS",
		"Too many options selected for this poll",
		"",
	)

	ErrUnknownOption = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_OPTION",
		"The selection references an option the poll does not have",
		"",
	)

	// Report-related errors
	ErrReportTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"REPORT_TITLE_REQUIRED",
		"A report title is required",
		"",
	)

	ErrReportBodyRequired = NewBaseError(
		http.StatusBadRequest,
		"REPORT_BODY_REQUIRED",
		"A report description is required",
		"",
	)

	ErrReportBodyTooLong = NewBaseError(
		http.StatusBadRequest,
		"REPORT_BODY_TOO_LONG",
		"Report descriptions are limited to 500 characters",
		"",
	)

	ErrInvalidReportCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REPORT_CATEGORY",
		"Report category must be app or store",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

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

// Unwrap exposes the underlying cause for errors.Is/As.
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
