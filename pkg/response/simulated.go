package response

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
)

// Simulated is a response built in-process from a Go payload.
type Simulated struct {
	ok         bool
	status     int
	header     http.Header
	payload    any
	hasPayload bool
}

// OKWith returns a 200 response carrying payload.
func OKWith(payload any) *Simulated {
	s := newSimulated(http.StatusOK)
	s.payload = payload
	s.hasPayload = true
	return s
}

// NoContent returns a 200 response without a payload.
func NoContent() *Simulated {
	return newSimulated(http.StatusOK)
}

// Error returns a failed response with a {"message": ...} payload.
func Error(status int, message string) *Simulated {
	s := newSimulated(status)
	s.payload = map[string]string{"message": message}
	s.hasPayload = true
	return s
}

// Unauthorized is the response for a guarded route without a valid token.
func Unauthorized() *Simulated {
	return Error(http.StatusUnauthorized, "Unauthorized")
}

func newSimulated(status int) *Simulated {
	h := make(http.Header, 2)
	h.Set("Content-Type", ContentTypeJSON)
	return &Simulated{
		ok:     status == http.StatusOK,
		status: status,
		header: h,
	}
}

// SetHeader sets a response header, replacing existing values.
func (s *Simulated) SetHeader(name, value string) {
	s.header.Set(name, value)
}

// OK reports whether the response succeeded.
func (s *Simulated) OK() bool { return s.ok }

// StatusCode returns the numeric status.
func (s *Simulated) StatusCode() int { return s.status }

// Status returns the status line text.
func (s *Simulated) Status() string { return StatusText(s.status) }

// Reason returns the standard reason phrase for the status.
func (s *Simulated) Reason() string { return http.StatusText(s.status) }

// Header returns the first value of the named header.
func (s *Simulated) Header(name string) string { return s.header.Get(name) }

// HasBody reports whether the response carries a payload.
func (s *Simulated) HasBody() bool { return s.hasPayload }

// Payload returns the Go value the response was built from.
func (s *Simulated) Payload() any { return s.payload }

// Decode round-trips the payload through JSON into v, so callers observe
// exactly what a network client would.
func (s *Simulated) Decode(v any) error {
	if !s.hasPayload {
		return ErrEmptyBody
	}
	data, err := s.Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Bytes encodes the payload. A response without payload yields nil.
func (s *Simulated) Bytes() ([]byte, error) {
	if !s.hasPayload {
		return nil, nil
	}
	return json.Marshal(s.payload)
}

// Close is a no-op; simulated responses hold no resources.
func (s *Simulated) Close() error { return nil }

// HTTPResponse converts the response for use as an http.RoundTripper result.
// The body is encoded on first read.
func (s *Simulated) HTTPResponse(req *http.Request) *http.Response {
	resp := &http.Response{
		Status:        s.Status(),
		StatusCode:    s.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        s.header.Clone(),
		Body:          &lazyBody{encode: s.Bytes},
		ContentLength: -1,
		Request:       req,
	}
	if !s.hasPayload {
		resp.Body = http.NoBody
		resp.ContentLength = 0
		resp.Header.Set("Content-Length", strconv.Itoa(0))
	}
	return resp
}

// lazyBody defers encoding until the first Read.
type lazyBody struct {
	once   sync.Once
	encode func() ([]byte, error)
	r      io.Reader
	err    error
}

func (b *lazyBody) Read(p []byte) (int, error) {
	b.once.Do(func() {
		data, err := b.encode()
		b.r, b.err = bytes.NewReader(data), err
	})
	if b.err != nil {
		return 0, b.err
	}
	return b.r.Read(p)
}

func (b *lazyBody) Close() error { return nil }
