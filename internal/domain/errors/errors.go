// Package errors defines the application error taxonomy.
// Every error a usecase can surface maps to exactly one HTTP status code
// and a stable business error code.
package errors

import (
	"net/http"

	"avo/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error values. Usecases wrap these; the HTTP error handler
// unwraps them back into status codes and envelopes.
var (
	// Validation and input errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"invalid email format",
		"",
	)

	// Identity errors.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"email already exists, please log in",
		"",
	)

	ErrNumberAlreadyExists = NewBaseError(
		http.StatusConflict,
		"NUMBER_ALREADY_EXISTS",
		"phone number already in use",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrAccountNotVerified = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_NOT_VERIFIED",
		"account not verified, please verify your email",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"invalid OTP",
		"",
	)

	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESET_TOKEN",
		"invalid or expired reset token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// Business and offer errors.
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"business not found",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"offer not found",
		"",
	)

	// Coupon lifecycle errors.
	ErrCouponNotFound = NewBaseError(
		http.StatusNotFound,
		"COUPON_NOT_FOUND",
		"coupon not found",
		"",
	)

	ErrCouponAlreadyRedeemed = NewBaseError(
		http.StatusConflict,
		"COUPON_ALREADY_REDEEMED",
		"an active coupon for this offer already exists",
		"",
	)

	ErrCouponExhausted = NewBaseError(
		http.StatusConflict,
		"COUPON_EXHAUSTED",
		"coupon has no remaining uses",
		"",
	)

	ErrCouponExpired = NewBaseError(
		http.StatusConflict,
		"COUPON_EXPIRED",
		"coupon has expired",
		"",
	)

	// Transaction errors.
	ErrTransactionNotFound = NewBaseError(
		http.StatusNotFound,
		"TRANSACTION_NOT_FOUND",
		"transaction not found",
		"",
	)

	// Authorization errors.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	// Upstream collaborator errors (email, OAuth provider, media store).
	ErrUpstreamFailed = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILED",
		"upstream provider request failed",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_TOKEN_INVALID",
		"invalid provider token",
		"",
	)

	ErrOAuthEmailUnverified = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_EMAIL_UNVERIFIED",
		"email not verified by provider",
		"",
	)

	// General errors.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
