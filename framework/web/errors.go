package web

import (
	"errors"
)

// Set of error variables for returning on operations.
var (
	ErrNoToken         = errors.New("No token found")
	ErrInvalidToken    = errors.New("Invalid token")
	ErrInvalidTokenSet = errors.New("Invalid token set")
	ErrUnexpected      = errors.New("An unexpected error occured")
)

// Error is used to pass an error during the request through the
// application with web specific context. Body optionally carries the
// request body so validation failures can echo it back to the caller.
type Error struct {
	Err    error
	Status int
	Body   interface{}
}

// NewRequestError wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// NewRequestErrorWithBody wraps a provided error with an HTTP status code
// and the request body to echo back in the response envelope.
func NewRequestErrorWithBody(err error, status int, body interface{}) error {
	return &Error{Err: err, Status: status, Body: body}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (err *Error) Error() string {
	return err.Err.Error()
}

// shutdown is a type used to help with the graceful termination of the service.
type shutdown struct {
	Message string
}

// NewShutdownError returns an error that causes the framework to signal
// a graceful shutdown.
func NewShutdownError(message string) error {
	return &shutdown{message}
}

// Error is the implementation of the error interface.
func (s *shutdown) Error() string {
	return s.Message
}

// IsShutdown checks to see if the shutdown error is contained
// in the specified error value.
func IsShutdown(err error) bool {
	if _, ok := err.(*shutdown); ok {
		return true
	}

	return false
}
