package response

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOKWith(t *testing.T) {
	r := OKWith([]map[string]any{{"id": 1, "name": "drill"}})

	assert.True(t, r.OK())
	assert.Equal(t, http.StatusOK, r.StatusCode())
	assert.Equal(t, "200 OK", r.Status())
	assert.Equal(t, "OK", r.Reason())
	assert.Equal(t, ContentTypeJSON, r.Header("Content-Type"))
	assert.Equal(t, ContentTypeJSON, r.Header("content-type"))
	assert.Empty(t, r.Header("X-Unknown"))

	var got []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, r.Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "drill", got[0].Name)
}

func TestNoContent(t *testing.T) {
	r := NoContent()

	assert.True(t, r.OK())
	assert.False(t, r.HasBody())

	var v any
	assert.ErrorIs(t, r.Decode(&v), ErrEmptyBody)
}

func TestError(t *testing.T) {
	r := Error(http.StatusBadRequest, "Username or password is incorrect")

	assert.False(t, r.OK())
	assert.Equal(t, http.StatusBadRequest, r.StatusCode())

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, r.Decode(&body))
	assert.Equal(t, "Username or password is incorrect", body.Message)
}

func TestUnauthorized(t *testing.T) {
	r := Unauthorized()
	assert.False(t, r.OK())
	assert.Equal(t, http.StatusUnauthorized, r.StatusCode())
	assert.Equal(t, map[string]string{"message": "Unauthorized"}, r.Payload())
}

func TestDecodeIsolatesPayload(t *testing.T) {
	payload := map[string]any{"name": "drill"}
	r := OKWith(payload)

	var got map[string]any
	require.NoError(t, r.Decode(&got))
	got["name"] = "changed"

	assert.Equal(t, "drill", payload["name"])
}

func TestHTTPResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.test/users", nil)
	r := OKWith(map[string]int{"id": 3})
	r.SetHeader("X-Request-Id", "abc")

	resp := r.HTTPResponse(req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "200 OK", resp.Status)
	assert.Equal(t, "abc", resp.Header.Get("X-Request-Id"))
	assert.Same(t, req, resp.Request)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3}`, string(body))
}

func TestHTTPResponse_NoContent(t *testing.T) {
	resp := NoContent().HTTPResponse(nil)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.Equal(t, int64(0), resp.ContentLength)
}

func TestHTTPResponse_HeaderIsCopied(t *testing.T) {
	r := NoContent()
	resp := r.HTTPResponse(nil)
	resp.Header.Set("Content-Type", "text/plain")

	assert.Equal(t, ContentTypeJSON, r.Header("Content-Type"))
}

func TestFromHTTP(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"message":"nope"}`)),
	}
	r := FromHTTP(resp)
	defer r.Close()

	assert.False(t, r.OK())
	assert.Equal(t, "404 Not Found", r.Status())
	assert.Equal(t, "Not Found", r.Reason())
	assert.Equal(t, "application/json", r.Header("Content-Type"))

	var body map[string]string
	require.NoError(t, r.Decode(&body))
	assert.Equal(t, "nope", body["message"])
	assert.Same(t, resp, r.Unwrap())
}

func TestFromHTTP_EmptyBody(t *testing.T) {
	r := FromHTTP(&http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody})
	assert.True(t, r.OK())

	var v any
	assert.ErrorIs(t, r.Decode(&v), ErrEmptyBody)
	assert.NoError(t, r.Close())
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "403 Forbidden", StatusText(http.StatusForbidden))
	assert.Equal(t, "599", StatusText(599))
}

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{"simulated", Error(http.StatusUnauthorized, "Unauthorized"), "Unauthorized"},
		{"simulated unknown code", Error(599, "x"), ""},
		{"custom phrase", FromHTTP(&http.Response{StatusCode: 404, Status: "404 Gone Fishing"}), "Gone Fishing"},
		{"missing status line", FromHTTP(&http.Response{StatusCode: 503}), "Service Unavailable"},
		{"code only status line", FromHTTP(&http.Response{StatusCode: 599, Status: "599"}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.Reason())
		})
	}
}
