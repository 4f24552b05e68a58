package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("resource already exists")

	// Authentication errors
	ErrNotAuthenticated   = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors.
	// ErrNotOwner is distinct from ErrNotAuthenticated: the caller is known
	// but does not own the record. Handlers map them to 403 vs 401.
	ErrNotOwner = errors.New("caller does not own this resource")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUsernameExists     = errors.New("username already exists")
)

// Entity-specific not-found/conflict errors. They all unwrap to the shared
// sentinels so handler mapping stays uniform.
var (
	ErrEventNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "event not found"}
	ErrReviewNotFound  = &CustomError{Err: ErrResourceNotFound, Message: "review not found"}
	ErrProfileNotFound = &CustomError{Err: ErrResourceNotFound, Message: "profile not found"}
	ErrReviewExists    = &CustomError{Err: ErrConflict, Message: "you have already reviewed this event"}
)

// NewValidationError creates a validation failure with a field-level message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewNotOwnerError creates an ownership denial with a message
func NewNotOwnerError(message string) error {
	return &CustomError{
		Err:     ErrNotOwner,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
