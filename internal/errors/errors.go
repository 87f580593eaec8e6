package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPollNotFound is returned when a poll does not exist or is owned by someone else.
	ErrPollNotFound = errors.New("Poll not found")
	// ErrOptionNotFound is returned when an option does not belong to the poll being voted on.
	ErrOptionNotFound = errors.New("Option not found")
	// ErrPollNotCreated is returned when persistence reports no poll row created.
	ErrPollNotCreated = errors.New("Poll was not created")
	// ErrNoOptions is returned when a poll is submitted without any options.
	ErrNoOptions = errors.New("Poll must have at least one option")
	// ErrUserNotFound is returned when a session token resolves to no user.
	ErrUserNotFound = errors.New("User not found")
	// ErrEmailExists is returned when the email is already registered.
	ErrEmailExists = errors.New("User with that email already exists")
	// ErrUsernameExists is returned when the username is already registered.
	ErrUsernameExists = errors.New("User with that username already exists")
	// ErrEmailAndUsernameExist is returned when both fields collide.
	ErrEmailAndUsernameExist = errors.New("User with that email and username already exists")
	// ErrEmailNotRegistered is returned on login with an unknown email.
	ErrEmailNotRegistered = errors.New("User with that email doesn't exist")
	// ErrWrongPassword is returned when the submitted password does not match the stored hash.
	ErrWrongPassword = errors.New("Wrong password")
	// ErrTokenMissing is returned when no session token was supplied.
	ErrTokenMissing = errors.New("Token missing")
	// ErrUserNotVerified is returned when a session resolves to an unverified user.
	ErrUserNotVerified = errors.New("User not verified")
)

// ErrorResponse is the uniform error envelope written to clients.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: e.Message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNoOptions):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTokenMissing),
		errors.Is(err, ErrUserNotVerified),
		errors.Is(err, ErrEmailNotRegistered),
		errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrPollNotFound),
		errors.Is(err, ErrOptionNotFound),
		errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrPollNotCreated),
		errors.Is(err, ErrEmailExists),
		errors.Is(err, ErrUsernameExists),
		errors.Is(err, ErrEmailAndUsernameExist):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
}
