package transport

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fakeapi/pkg/response"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestReal_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"message":"short and stout"}`))
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/books", nil)
	require.NoError(t, err)

	resp, err := NewReal(nil).Do(req)
	require.NoError(t, err)
	defer resp.Close()

	assert.False(t, resp.OK())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode())

	var body map[string]string
	require.NoError(t, resp.Decode(&body))
	assert.Equal(t, "short and stout", body["message"])
}

func TestReal_ErrorUnchanged(t *testing.T) {
	cause := errors.New("connection refused")
	rt := NewReal(roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, cause }))

	req := httptest.NewRequest(http.MethodGet, "http://api.test/", nil)
	resp, err := rt.Do(req)
	assert.Nil(t, resp)
	assert.Same(t, cause, err)
}

func TestRoundTripper_Simulated(t *testing.T) {
	tr := Func(func(*http.Request) (response.Response, error) {
		return response.OKWith(map[string]int{"id": 1}), nil
	})
	client := &http.Client{Transport: RoundTripper(tr)}

	resp, err := client.Get("http://api.test/users/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":1}`, string(body))
}

func TestRoundTripper_Real(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := &http.Client{Transport: RoundTripper(NewReal(nil))}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

type opaqueResponse struct{ response.Response }

func (opaqueResponse) Close() error { return nil }

func TestRoundTripper_Unsupported(t *testing.T) {
	tr := Func(func(*http.Request) (response.Response, error) { return opaqueResponse{}, nil })
	_, err := RoundTripper(tr).RoundTrip(httptest.NewRequest(http.MethodGet, "http://api.test/", nil))
	assert.ErrorIs(t, err, ErrUnsupportedResponse)
}
