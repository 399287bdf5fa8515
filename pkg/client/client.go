package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/getmockd/fakeapi/pkg/auth"
	"github.com/getmockd/fakeapi/pkg/logging"
	"github.com/getmockd/fakeapi/pkg/response"
	"github.com/getmockd/fakeapi/pkg/session"
	"github.com/getmockd/fakeapi/pkg/transport"
)

// Error is an unsuccessful response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsStatus reports whether err is an *Error with the given status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

// Client dispatches API requests.
type Client struct {
	baseURL   string
	transport transport.Transport
	sessions  session.Provider
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSessions sets the session provider consulted for the bearer token.
// Without one, no Authorization header is sent.
func WithSessions(p session.Provider) Option {
	return func(c *Client) {
		c.sessions = p
	}
}

// New returns a Client for the API rooted at baseURL. A nil t sends
// requests over the network.
func New(baseURL string, t transport.Transport, opts ...Option) *Client {
	if t == nil {
		t = transport.NewReal(nil)
	}
	c := &Client{
		baseURL:   baseURL,
		transport: t,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// URL joins path onto the base URL.
func (c *Client) URL(path string) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// Get sends a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, url string, out any) error {
	return c.Do(ctx, http.MethodGet, url, nil, out)
}

// Post sends body as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, url string, body, out any) error {
	return c.Do(ctx, http.MethodPost, url, body, out)
}

// Put sends body as JSON and decodes the response into out.
func (c *Client) Put(ctx context.Context, url string, body, out any) error {
	return c.Do(ctx, http.MethodPut, url, body, out)
}

// Delete sends a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, url string, out any) error {
	return c.Do(ctx, http.MethodDelete, url, nil, out)
}

// Do sends one request. A nil body sends no payload; a nil out discards
// the response body. Transport errors are returned unchanged.
func (c *Client) Do(ctx context.Context, method, url string, body, out any) error {
	req, err := c.newRequest(ctx, method, url, body)
	if err != nil {
		return err
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		return err
	}
	defer resp.Close()

	return c.handle(resp, out)
}

func (c *Client) newRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", response.ContentTypeJSON)
	}
	if token := c.token(url); token != "" {
		req.Header.Set("Authorization", auth.BearerHeader(token))
	}
	return req, nil
}

// token returns the session token when url belongs to the API.
func (c *Client) token(url string) string {
	if c.sessions == nil || !strings.HasPrefix(url, c.baseURL) {
		return ""
	}
	if s := c.sessions.Current(); s != nil {
		return s.Token
	}
	return ""
}

func (c *Client) handle(resp response.Response, out any) error {
	isJSON := strings.Contains(resp.Header("Content-Type"), response.ContentTypeJSON)

	if !resp.OK() {
		status := resp.StatusCode()
		if (status == http.StatusUnauthorized || status == http.StatusForbidden) && c.hasSession() {
			c.log.Info("session rejected, logging out", "status", status)
			c.sessions.Logout()
		}
		return &Error{Status: status, Message: errorMessage(resp, isJSON)}
	}

	if out == nil || !isJSON {
		return nil
	}
	if err := resp.Decode(out); err != nil && !errors.Is(err, response.ErrEmptyBody) {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func (c *Client) hasSession() bool {
	return c.sessions != nil && c.sessions.Current() != nil
}

// errorMessage prefers the body's "message", then the status text, then
// the bare status code.
func errorMessage(resp response.Response, isJSON bool) string {
	if isJSON {
		var body struct {
			Message string `json:"message"`
		}
		if err := resp.Decode(&body); err == nil && body.Message != "" {
			return body.Message
		}
	}

	if text := resp.Reason(); text != "" {
		return text
	}
	return strconv.Itoa(resp.StatusCode())
}
