package fakebackend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/getmockd/fakeapi/internal/matching"
	"github.com/getmockd/fakeapi/pkg/auth"
	"github.com/getmockd/fakeapi/pkg/logging"
	"github.com/getmockd/fakeapi/pkg/metrics"
	"github.com/getmockd/fakeapi/pkg/records"
	"github.com/getmockd/fakeapi/pkg/response"
	"github.com/getmockd/fakeapi/pkg/routing"
	"github.com/getmockd/fakeapi/pkg/transport"
)

// DefaultLatency is the simulated network delay.
const DefaultLatency = 500 * time.Millisecond

const instrumentationName = "github.com/getmockd/fakeapi/pkg/fakebackend"

// RequestIDHeader carries the id assigned to each simulated response.
const RequestIDHeader = "X-Request-Id"

// Backend answers the simulated routes from a record store and forwards
// everything else.
type Backend struct {
	records *records.Store
	table   *routing.Table
	guard   *auth.Guard
	next    transport.Transport
	latency time.Duration
	log     *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	newID   func() string
}

// Option configures a Backend.
type Option func(*Backend)

// WithLatency sets the simulated delay. Values <= 0 select DefaultLatency.
func WithLatency(d time.Duration) Option {
	return func(b *Backend) {
		if d > 0 {
			b.latency = d
		}
	}
}

// WithToken sets the bearer token issued and accepted by the backend.
func WithToken(token string) Option {
	return func(b *Backend) {
		b.guard = auth.NewGuard(token)
	}
}

// WithNext sets the transport for unmatched requests.
func WithNext(next transport.Transport) Option {
	return func(b *Backend) {
		if next != nil {
			b.next = next
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *Backend) {
		if log != nil {
			b.log = log
		}
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Backend) {
		b.metrics = m
	}
}

// WithTracerProvider sets the provider spans are started from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *Backend) {
		if tp != nil {
			b.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// New returns a Backend serving recs.
func New(recs *records.Store, opts ...Option) (*Backend, error) {
	if recs == nil {
		return nil, errors.New("fakebackend: record store cannot be nil")
	}

	b := &Backend{
		records: recs,
		guard:   auth.NewGuard(""),
		next:    transport.NewReal(nil),
		latency: DefaultLatency,
		log:     logging.Nop(),
		tracer:  otel.GetTracerProvider().Tracer(instrumentationName),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.table = b.routes()
	return b, nil
}

// Token returns the bearer token the backend issues.
func (b *Backend) Token() string { return b.guard.Token() }

// Latency returns the simulated delay.
func (b *Backend) Latency() time.Duration { return b.latency }

// Routes returns the route table in match order.
func (b *Backend) Routes() []routing.Route { return b.table.Routes() }

// RoundTrip implements http.RoundTripper.
func (b *Backend) RoundTrip(req *http.Request) (*http.Response, error) {
	return transport.RoundTripper(b).RoundTrip(req)
}

// Do implements transport.Transport.
//
// Error responses for bad requests, missing records and failed auth are
// returned as responses. A non-nil error means the request could not be
// served at all: the context ended, the store failed to persist, or the
// next transport failed. Such errors are returned unchanged.
func (b *Backend) Do(req *http.Request) (response.Response, error) {
	ctx := req.Context()

	req, body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	route, ok := b.table.Match(req.URL.Path, req.Method)
	if !ok {
		b.metrics.IncrementPassThrough()
		b.log.Debug("passing request through", "method", req.Method, "url", req.URL.String())
		return b.next.Do(req)
	}

	return b.serve(ctx, route, req, body)
}

func (b *Backend) serve(ctx context.Context, route *routing.Route, req *http.Request, body []byte) (response.Response, error) {
	requestID := b.newID()
	ctx, span := b.tracer.Start(ctx, "fakeapi "+route.Name,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.URL.Path),
			attribute.String("fakeapi.request_id", requestID),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := b.handle(ctx, route, req, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.log.Error("simulated request failed",
			"route", route.Name,
			"request_id", requestID,
			"error", err,
		)
		return nil, err
	}
	elapsed := time.Since(start)

	resp.SetHeader(RequestIDHeader, requestID)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode()))
	b.metrics.ObserveSimulated(route.Name, resp.StatusCode(), elapsed)
	b.log.Debug("simulated request",
		"route", route.Name,
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode(),
		"request_id", requestID,
		"duration", elapsed,
	)
	return resp, nil
}

func (b *Backend) handle(ctx context.Context, route *routing.Route, req *http.Request, body []byte) (*response.Simulated, error) {
	if !route.Public && !b.guard.IsAuthenticated(req.Header) {
		b.metrics.IncrementUnauthorized()
		return response.Unauthorized(), nil
	}

	id, _ := matching.TrailingID(req.URL.Path)
	resp, err := route.Handle(ctx, &routing.Request{
		Method: req.Method,
		Path:   req.URL.Path,
		Header: req.Header,
		Body:   body,
		ID:     id,
	})
	if err == nil {
		return resp, nil
	}

	var sce records.StatusCodeError
	if errors.As(err, &sce) {
		return response.Error(sce.StatusCode(), sce.Error()), nil
	}
	return nil, err
}

// wait blocks for the simulated latency or until ctx is done.
func (b *Backend) wait(ctx context.Context) error {
	timer := time.NewTimer(b.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// bufferBody consumes and closes the caller's body and returns a clone of
// req carrying the same bytes, so a forwarded request is complete while the
// caller's request is left as it was.
func bufferBody(req *http.Request) (*http.Request, []byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return req, nil, nil
	}
	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("read request body: %w", err)
	}

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(data))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	out.ContentLength = int64(len(data))
	return out, data, nil
}
