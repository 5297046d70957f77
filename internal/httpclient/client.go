// Package httpclient provides the HTTP client shared by the upstream GIS and statistics sources.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/schoolgis/schoolsync/internal/otel"
)

const (
	// DefaultTimeout is used when a non-positive timeout is given.
	DefaultTimeout = 10 * time.Second
	// MaxResponseSize caps how much of a response body is read.
	MaxResponseSize = 100 * 1024 * 1024
	// UserAgent is sent with every request.
	UserAgent = "schoolsync/1.0"
)

// Client fetches a URL and returns the response body.
type Client interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Observer is notified once per request attempt. statusCode is 0 when no response arrived.
type Observer func(ctx context.Context, url string, statusCode int, duration time.Duration, err error)

// DefaultClient is the net/http implementation of Client with optional pacing and retry.
type DefaultClient struct {
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries uint
	initialGap time.Duration
	observer   Observer
	tracer     trace.Tracer
	headers    http.Header
}

// Option configures a DefaultClient.
type Option func(*DefaultClient)

// WithRateLimit paces requests to rps per second with the given burst. rps <= 0 disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *DefaultClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMaxRetries retries transport failures, 429 and 5xx up to n extra times with exponential backoff.
func WithMaxRetries(n uint) Option {
	return func(c *DefaultClient) {
		c.maxRetries = n
	}
}

// WithInitialBackoff sets the first retry interval.
func WithInitialBackoff(d time.Duration) Option {
	return func(c *DefaultClient) {
		if d > 0 {
			c.initialGap = d
		}
	}
}

// WithHeader adds a header to every request, replacing a default of the same name.
func WithHeader(key, value string) Option {
	return func(c *DefaultClient) {
		if c.headers == nil {
			c.headers = http.Header{}
		}
		c.headers.Set(key, value)
	}
}

// WithObserver installs a per-attempt callback, used for metrics.
func WithObserver(o Observer) Option {
	return func(c *DefaultClient) {
		c.observer = o
	}
}

// WithTracer wraps each request in a client span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *DefaultClient) {
		c.tracer = tracer
	}
}

// NewDefaultClient creates a new HTTP client with the specified timeout
func NewDefaultClient(timeout time.Duration, opts ...Option) *DefaultClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &DefaultClient{
		client:     &http.Client{Timeout: timeout},
		initialGap: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request and returns the response body
func (c *DefaultClient) Get(ctx context.Context, url string) ([]byte, error) {
	ctx, span := otel.StartSpan(ctx, c.tracer, "httpclient.Get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", url)),
	)
	defer span.End()

	if c.maxRetries == 0 {
		body, err := c.attempt(ctx, url)
		otel.RecordError(span, err)
		return body, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialGap
	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		body, err := c.attempt(ctx, url)
		if err != nil && !retryable(ctx, err) {
			return nil, backoff.Permanent(err)
		}
		return body, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(c.maxRetries+1))
	otel.RecordError(span, err)
	return body, err
}

func (c *DefaultClient) attempt(ctx context.Context, url string) (body []byte, err error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	start := time.Now()
	status := 0
	if c.observer != nil {
		defer func() {
			c.observer(ctx, url, status, time.Since(start), err)
		}()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	for key, values := range c.headers {
		req.Header[key] = values
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &transportError{err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	status = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		return nil, NewHTTPError(resp.StatusCode, url, http.StatusText(resp.StatusCode))
	}

	if resp.ContentLength > MaxResponseSize {
		return nil, fmt.Errorf("response size %d bytes exceeds maximum allowed size of %.2f MB",
			resp.ContentLength, float64(MaxResponseSize)/(1024*1024))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, &transportError{err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(data) > MaxResponseSize {
		return nil, fmt.Errorf("response body exceeds maximum allowed size of %.2f MB",
			float64(MaxResponseSize)/(1024*1024))
	}
	return data, nil
}

// transportError marks failures where no usable response arrived.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Temporary()
	}
	var tErr *transportError
	return errors.As(err, &tErr)
}
