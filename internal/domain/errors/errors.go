package errors

import (
	"net/http"

	"kidsactivity/internal/errors"
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
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Activity-related errors
	ErrActivityNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVITY_NOT_FOUND",
		"Activity not found",
		"",
	)

	// Child-related errors
	ErrChildNotFound = NewBaseError(
		http.StatusNotFound,
		"CHILD_NOT_FOUND",
		"Child profile not found",
		"",
	)

	ErrChildOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"CHILD_OWNERSHIP_VIOLATION",
		"You do not have access to this child profile",
		"",
	)

	ErrChildActivityNotFound = NewBaseError(
		http.StatusNotFound,
		"CHILD_ACTIVITY_NOT_FOUND",
		"Tracked activity not found for this child",
		"",
	)

	ErrChildActivityExists = NewBaseError(
		http.StatusConflict,
		"CHILD_ACTIVITY_EXISTS",
		"This activity is already tracked for the child",
		"",
	)

	ErrInvalidActivityStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTIVITY_STATUS",
		"Unknown activity status",
		"",
	)

	// Favorite-related errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		"",
	)

	ErrFavoriteExists = NewBaseError(
		http.StatusConflict,
		"FAVORITE_EXISTS",
		"Activity is already in favorites",
		"",
	)

	// Sharing-related errors
	ErrInvitationNotFound = NewBaseError(
		http.StatusNotFound,
		"INVITATION_NOT_FOUND",
		"Invitation not found",
		"",
	)

	ErrInvitationExists = NewBaseError(
		http.StatusConflict,
		"INVITATION_EXISTS",
		"A pending invitation already exists for this email",
		"",
	)

	ErrInvitationExpired = NewBaseError(
		http.StatusGone,
		"INVITATION_EXPIRED",
		"This invitation has expired",
		"",
	)

	ErrInvitationNotPending = NewBaseError(
		http.StatusConflict,
		"INVITATION_NOT_PENDING",
		"This invitation has already been answered",
		"",
	)

	ErrInvitationWrongInvitee = NewBaseError(
		http.StatusForbidden,
		"INVITATION_WRONG_INVITEE",
		"This invitation was issued to a different email",
		"",
	)

	ErrSelfInvitation = NewBaseError(
		http.StatusBadRequest,
		"SELF_INVITATION",
		"You cannot share activities with yourself",
		"",
	)

	// Catalog-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrProviderNotFound = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_FOUND",
		"Provider not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message. The wrapped driver error
// is deliberately not exposed here; it reaches the log, not the client.
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
