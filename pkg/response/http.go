package response

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// HTTP adapts an *http.Response to Response.
type HTTP struct {
	resp *http.Response
}

// FromHTTP wraps resp. The caller must Close the result.
func FromHTTP(resp *http.Response) *HTTP {
	return &HTTP{resp: resp}
}

// OK reports a 2xx status.
func (h *HTTP) OK() bool {
	return h.resp.StatusCode >= 200 && h.resp.StatusCode < 300
}

func (h *HTTP) StatusCode() int { return h.resp.StatusCode }

// Status returns the status line text as received.
func (h *HTTP) Status() string {
	if h.resp.Status != "" {
		return h.resp.Status
	}
	return StatusText(h.resp.StatusCode)
}

// Reason returns the reason phrase as received, falling back to the
// standard phrase for the code.
func (h *HTTP) Reason() string {
	if _, text, ok := strings.Cut(h.resp.Status, " "); ok && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text)
	}
	return http.StatusText(h.resp.StatusCode)
}

func (h *HTTP) Header(name string) string { return h.resp.Header.Get(name) }

// Decode reads the body as JSON into v. An empty body yields ErrEmptyBody.
func (h *HTTP) Decode(v any) error {
	if h.resp.Body == nil {
		return ErrEmptyBody
	}
	err := json.NewDecoder(h.resp.Body).Decode(v)
	if err == io.EOF {
		return ErrEmptyBody
	}
	return err
}

func (h *HTTP) Close() error {
	if h.resp.Body == nil {
		return nil
	}
	_, _ = io.Copy(io.Discard, h.resp.Body)
	return h.resp.Body.Close()
}

// Unwrap returns the underlying response.
func (h *HTTP) Unwrap() *http.Response { return h.resp }
