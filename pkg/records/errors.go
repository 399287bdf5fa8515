package records

import (
	"fmt"
	"net/http"
)

// StatusCodeError is an error that maps onto an HTTP status code.
type StatusCodeError interface {
	error
	StatusCode() int
}

// BadRequestError is a business-rule violation such as bad credentials or a
// duplicate username. Its message is shown to the caller verbatim.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *BadRequestError) StatusCode() int {
	return http.StatusBadRequest
}

// NotFoundError is returned when an update targets an id that does not exist.
type NotFoundError struct {
	// Resource is the singular display name, e.g. "User" or "Item".
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// StatusCode returns the HTTP status code for this error.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// Messages exposed to callers.
const (
	MsgBadCredentials = "Username or password is incorrect"
)

func errBadCredentials() error {
	return &BadRequestError{Message: MsgBadCredentials}
}

func errUsernameTaken(username string) error {
	return &BadRequestError{Message: fmt.Sprintf(`Username "%s" is already taken`, username)}
}
