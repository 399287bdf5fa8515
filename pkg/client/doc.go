// Package client sends JSON requests to the API and normalizes responses.
//
// The Client attaches the session's bearer token to requests addressed to
// the configured base URL, encodes request bodies as JSON and turns every
// unsuccessful response into an *Error carrying one message. A 401 or 403
// while a session is active ends that session.
//
// Requests go through a transport.Transport, so the same Client talks to
// the simulated backend or to a real server.
package client
