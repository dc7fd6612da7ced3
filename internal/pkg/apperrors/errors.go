package apperrors

import "errors"

// Taxonomy roots. Every service error wraps exactly one of these so the
// error middleware can classify it without knowing the service.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("conflict")
	ErrValidationFailed     = errors.New("validation failed")
	ErrInvalidState         = errors.New("invalid state")
	ErrInvalidSemesterCode  = errors.New("invalid semester code")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("invalid token")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrAccountDeleted       = errors.New("account is deleted")
	ErrAccountBlocked       = errors.New("account is blocked")
)

// CustomError carries a human-readable message on top of a taxonomy root.
type CustomError struct {
	Err     error
	Message string
	Path    string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithPath attaches the field or reference the error is about.
func (e *CustomError) WithPath(path string) *CustomError {
	e.Path = path
	return e
}

// NewNotFoundError reports a missing referenced entity.
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError reports a duplicate unique key or schedule overlap.
func NewConflictError(message string) *CustomError {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewValidationError reports a shape or cross-reference failure.
func NewValidationError(message string) *CustomError {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewStateError reports a mutation attempted while the owning aggregate
// is not in an editable state.
func NewStateError(message string) *CustomError {
	return &CustomError{Err: ErrInvalidState, Message: message}
}
