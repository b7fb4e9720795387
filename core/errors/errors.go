package errors

import "fmt"

type ErrorCode string

const (
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrForbidden          ErrorCode = "FORBIDDEN"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"

	ErrCreateFailed ErrorCode = "CREATE_FAILED"
	ErrGetFailed    ErrorCode = "GET_FAILED"
	ErrUpdateFailed ErrorCode = "UPDATE_FAILED"

	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"

	// Availability store could not be read.
	ErrStoreRead ErrorCode = "STORE_READ_FAILED"
	// Venue recommender returned output that is not the expected JSON list.
	ErrVenueParse ErrorCode = "VENUE_PARSE_FAILED"
	// Venue recommender call itself failed.
	ErrVenueService ErrorCode = "VENUE_SERVICE_FAILED"
	// Background queue rejected a task.
	ErrEnqueueFailed ErrorCode = "ENQUEUE_FAILED"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on code so callers can compare against a bare AppError{Code: ...}.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code carried by err, or ErrInternalServer.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if ae, ok := err.(*AppError); ok && ae != nil {
			return ae.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrInternalServer
}
