package response

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrEmptyBody is returned by Decode when a response carries no payload.
var ErrEmptyBody = errors.New("response has no body")

// ContentTypeJSON is the content type of every simulated response.
const ContentTypeJSON = "application/json"

// Response is what a transport returns for one request.
type Response interface {
	// OK reports whether the request succeeded.
	OK() bool
	StatusCode() int
	// Status is the status line text, e.g. "404 Not Found".
	Status() string
	// Reason is the reason phrase alone, e.g. "Not Found", or "" when
	// there is none.
	Reason() string
	Header(name string) string
	// Decode unmarshals the JSON body into v.
	Decode(v any) error
	Close() error
}

// StatusText formats code as "<code> <reason>", or just the code when the
// reason is unknown.
func StatusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return strconv.Itoa(code) + " " + text
	}
	return strconv.Itoa(code)
}
