// Package routing holds the ordered route table of the simulated backend.
package routing

import (
	"context"
	"errors"
	"net/http"

	"github.com/getmockd/fakeapi/internal/matching"
	"github.com/getmockd/fakeapi/pkg/response"
)

// ErrEmptyRequestBody is returned by Request.DecodeJSON when no body was sent.
var ErrEmptyRequestBody = errors.New("request body is empty")

// Request is the part of an intercepted request that handlers see.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
	// ID is the trailing numeric path segment, or 0 when there is none.
	ID int
}

// Handler answers a matched request. Errors that implement
// StatusCode() int become error responses; any other error is a
// transport failure.
type Handler func(ctx context.Context, req *Request) (*response.Simulated, error)

// Route pairs a predicate with its handler.
type Route struct {
	// Name identifies the route in logs and metrics, e.g. "users.list".
	Name   string
	Match  matching.Predicate
	Handle Handler
	// Public routes skip the auth guard.
	Public bool
}

// Table is an ordered list of routes. The first match wins.
type Table struct {
	routes []Route
}

// NewTable returns a table evaluating routes in the given order.
func NewTable(routes ...Route) *Table {
	return &Table{routes: routes}
}

// Match returns the first route whose predicate accepts path and method.
func (t *Table) Match(path, method string) (*Route, bool) {
	for i := range t.routes {
		if t.routes[i].Match(path, method) {
			return &t.routes[i], true
		}
	}
	return nil, false
}

// Routes returns a copy of the table's routes in match order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}
