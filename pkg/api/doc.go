// Package api provides typed access to the users and inventory endpoints.
//
// Services are thin wrappers around client.Client: they build URLs under the
// client's base URL and decode bodies into record types. Users also keeps
// the session store in sync with login, logout, self-update and
// self-delete.
package api
