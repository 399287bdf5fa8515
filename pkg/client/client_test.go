package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fakeapi/pkg/records"
	"github.com/getmockd/fakeapi/pkg/response"
	"github.com/getmockd/fakeapi/pkg/session"
	"github.com/getmockd/fakeapi/pkg/transport"
)

const baseURL = "http://api.test"

// recorder is a transport that records the last request and replies with
// a canned response.
type recorder struct {
	req  *http.Request
	body string
	resp response.Response
	err  error
}

func (r *recorder) Do(req *http.Request) (response.Response, error) {
	r.req = req
	r.body = ""
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		r.body = string(data)
	}
	return r.resp, r.err
}

func loggedIn(token string) *session.Store {
	s := session.NewStore()
	s.Login(session.Session{Token: token, User: records.PublicUser{ID: 1, Username: "bob"}})
	return s
}

func httpResponse(status int, contentType, body string) response.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return response.FromHTTP(&http.Response{
		StatusCode: status,
		Status:     response.StatusText(status),
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	})
}

func TestAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name     string
		sessions session.Provider
		url      string
		want     string
	}{
		{"session and api url", loggedIn("tok"), baseURL + "/users", "Bearer tok"},
		{"foreign url", loggedIn("tok"), "http://elsewhere.test/users", ""},
		{"no session", session.NewStore(), baseURL + "/users", ""},
		{"empty token", loggedIn(""), baseURL + "/users", ""},
		{"no provider", nil, baseURL + "/users", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{resp: response.NoContent()}
			c := New(baseURL, rec, WithSessions(tt.sessions))

			require.NoError(t, c.Get(context.Background(), tt.url, nil))
			assert.Equal(t, tt.want, rec.req.Header.Get("Authorization"))
		})
	}
}

func TestBodyEncoding(t *testing.T) {
	rec := &recorder{resp: response.NoContent()}
	c := New(baseURL, rec)

	require.NoError(t, c.Post(context.Background(), c.URL("/inventory"), map[string]any{"name": "drill"}, nil))
	assert.Equal(t, http.MethodPost, rec.req.Method)
	assert.Equal(t, "application/json", rec.req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"drill"}`, rec.body)

	require.NoError(t, c.Delete(context.Background(), c.URL("/inventory/1"), nil))
	assert.Equal(t, http.MethodDelete, rec.req.Method)
	assert.Empty(t, rec.req.Header.Get("Content-Type"))
	assert.Empty(t, rec.body)
}

func TestDecodeOnlyJSON(t *testing.T) {
	c := New(baseURL, &recorder{resp: httpResponse(http.StatusOK, "text/plain", `{"id":1}`)})
	out := map[string]any{}
	require.NoError(t, c.Get(context.Background(), baseURL+"/x", &out))
	assert.Empty(t, out)

	c = New(baseURL, &recorder{resp: httpResponse(http.StatusOK, "application/json; charset=utf-8", `{"id":1}`)})
	require.NoError(t, c.Get(context.Background(), baseURL+"/x", &out))
	assert.Equal(t, float64(1), out["id"])
}

func TestEmptyOKBody(t *testing.T) {
	c := New(baseURL, &recorder{resp: response.NoContent()})
	var out []records.PublicUser
	require.NoError(t, c.Get(context.Background(), baseURL+"/users/9", &out))
	assert.Nil(t, out)
}

func TestErrorMessagePreference(t *testing.T) {
	tests := []struct {
		name string
		resp response.Response
		want string
	}{
		{"decoded message", response.Error(http.StatusBadRequest, "Username or password is incorrect"), "Username or password is incorrect"},
		{"status text for non-json", httpResponse(http.StatusNotFound, "text/html", "<h1>nope</h1>"), "Not Found"},
		{"status text for json without message", httpResponse(http.StatusInternalServerError, "application/json", `{"error":"x"}`), "Internal Server Error"},
		{"status code when no text", httpResponse(599, "", ""), "599"},
		{"reason phrase as received", response.FromHTTP(&http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Gone Fishing",
			Header:     http.Header{},
			Body:       http.NoBody,
		}), "Gone Fishing"},
		{"status line without code prefix", response.FromHTTP(&http.Response{
			StatusCode: http.StatusBadGateway,
			Header:     http.Header{},
			Body:       http.NoBody,
		}), "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(baseURL, &recorder{resp: tt.resp})
			err := c.Get(context.Background(), baseURL+"/x", nil)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, tt.want, err.Error())
			assert.Equal(t, tt.resp.StatusCode(), apiErr.Status)
		})
	}
}

func TestLogoutOnAuthFailure(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			sessions := loggedIn("stale")
			c := New(baseURL, &recorder{resp: response.Error(status, "Unauthorized")}, WithSessions(sessions))

			err := c.Get(context.Background(), baseURL+"/users", nil)
			assert.True(t, IsStatus(err, status))
			assert.Nil(t, sessions.Current())
		})
	}
}

func TestNoLogoutOnOtherErrors(t *testing.T) {
	sessions := loggedIn("tok")
	c := New(baseURL, &recorder{resp: response.Error(http.StatusBadRequest, "bad")}, WithSessions(sessions))

	err := c.Get(context.Background(), baseURL+"/users", nil)
	assert.True(t, IsStatus(err, http.StatusBadRequest))
	assert.NotNil(t, sessions.Current())
}

func TestUnauthorizedWithoutSession(t *testing.T) {
	sessions := session.NewStore()
	var logouts int
	sessions.OnLogout(func(session.Session) { logouts++ })

	c := New(baseURL, &recorder{resp: response.Unauthorized()}, WithSessions(sessions))
	err := c.Get(context.Background(), baseURL+"/users", nil)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	assert.Zero(t, logouts)
}

func TestTransportErrorUnchanged(t *testing.T) {
	cause := errors.New("connection reset")
	c := New(baseURL, transport.Func(func(*http.Request) (response.Response, error) { return nil, cause }))

	err := c.Get(context.Background(), baseURL+"/users", nil)
	assert.Same(t, cause, err)
}

func TestDecodeFailure(t *testing.T) {
	c := New(baseURL, &recorder{resp: httpResponse(http.StatusOK, "application/json", `{"id":`)})
	var out map[string]any
	err := c.Get(context.Background(), baseURL+"/x", &out)
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestURL(t *testing.T) {
	assert.Equal(t, "http://api.test/users/1", New("http://api.test/", nil).URL("/users/1"))
	assert.Equal(t, "http://api.test/v1/inventory", New("http://api.test/v1", nil).URL("inventory"))
}
