// Package transport defines how requests leave the process.
//
// A Transport sends one request and returns a response.Response. Real sends
// it over an http.RoundTripper. RoundTripper adapts any Transport back into
// an http.RoundTripper so an *http.Client can be pointed at a simulated
// backend.
package transport

import (
	"errors"
	"net/http"

	"github.com/getmockd/fakeapi/pkg/response"
)

// Transport sends a request and returns its response.
// Errors are transport failures; HTTP error statuses are responses.
type Transport interface {
	Do(req *http.Request) (response.Response, error)
}

// Func adapts a function to Transport.
type Func func(req *http.Request) (response.Response, error)

// Do calls f(req).
func (f Func) Do(req *http.Request) (response.Response, error) { return f(req) }

// Real sends requests over the network.
type Real struct {
	rt http.RoundTripper
}

// NewReal returns a Real over rt. A nil rt selects http.DefaultTransport.
func NewReal(rt http.RoundTripper) *Real {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &Real{rt: rt}
}

// Do sends req and adapts the result. RoundTripper errors are returned
// unchanged.
func (r *Real) Do(req *http.Request) (response.Response, error) {
	resp, err := r.rt.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	return response.FromHTTP(resp), nil
}

// RoundTripper returns the underlying round tripper.
func (r *Real) RoundTripper() http.RoundTripper { return r.rt }

// httpResponder is implemented by responses that can render themselves as
// an *http.Response.
type httpResponder interface {
	HTTPResponse(req *http.Request) *http.Response
}

type unwrapper interface {
	Unwrap() *http.Response
}

// ErrUnsupportedResponse is returned by RoundTripper when a Transport yields
// a response that cannot be converted to an *http.Response.
var ErrUnsupportedResponse = errors.New("transport: response cannot be converted to *http.Response")

// RoundTripper adapts t to http.RoundTripper.
func RoundTripper(t Transport) http.RoundTripper {
	return roundTripper{t: t}
}

type roundTripper struct {
	t Transport
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := rt.t.Do(req)
	if err != nil {
		return nil, err
	}
	switch r := resp.(type) {
	case httpResponder:
		return r.HTTPResponse(req), nil
	case unwrapper:
		return r.Unwrap(), nil
	default:
		_ = resp.Close()
		return nil, ErrUnsupportedResponse
	}
}
