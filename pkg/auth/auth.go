// Package auth implements the simulated backend's bearer token check.
package auth

import "net/http"

// DefaultToken is the token issued on every successful authentication.
const DefaultToken = "fake-jwt-token"

// Guard accepts requests that carry one fixed bearer token.
// The token is shared by every user.
type Guard struct {
	token string
}

// NewGuard returns a guard for token. An empty token selects DefaultToken.
func NewGuard(token string) *Guard {
	if token == "" {
		token = DefaultToken
	}
	return &Guard{token: token}
}

// Token returns the token this guard accepts.
func (g *Guard) Token() string {
	return g.token
}

// IsAuthenticated reports whether the Authorization header equals exactly
// "Bearer <token>". Scheme and token are case-sensitive.
func (g *Guard) IsAuthenticated(h http.Header) bool {
	return h.Get("Authorization") == BearerHeader(g.token)
}

// BearerHeader formats an Authorization header value for token.
func BearerHeader(token string) string {
	return "Bearer " + token
}
