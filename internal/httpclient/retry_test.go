package httpclient_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolgis/schoolsync/internal/httpclient"
)

// flakyServer fails the first `failures` requests with status and then answers 200.
func flakyServer(failures int32, status int) (*int32, http.Handler) {
	var calls int32
	return &calls, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= failures {
			w.WriteHeader(status)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":true}`))
	})
}

func TestDefaultClient_Get_Retry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		maxRetries  uint
		failures    int32
		status      int
		expectError bool
		wantCalls   int32
	}{
		{
			name:        "no retry by default",
			maxRetries:  0,
			failures:    1,
			status:      http.StatusServiceUnavailable,
			expectError: true,
			wantCalls:   1,
		},
		{
			name:       "retries server errors until success",
			maxRetries: 3,
			failures:   2,
			status:     http.StatusBadGateway,
			wantCalls:  3,
		},
		{
			name:       "retries throttling",
			maxRetries: 1,
			failures:   1,
			status:     http.StatusTooManyRequests,
			wantCalls:  2,
		},
		{
			name:        "gives up after max retries",
			maxRetries:  2,
			failures:    10,
			status:      http.StatusInternalServerError,
			expectError: true,
			wantCalls:   3,
		},
		{
			name:        "client errors are permanent",
			maxRetries:  3,
			failures:    10,
			status:      http.StatusNotFound,
			expectError: true,
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			calls, handler := flakyServer(tt.failures, tt.status)
			server := newTestServer(handler)
			defer server.Close()

			client := httpclient.NewDefaultClient(5*time.Second,
				httpclient.WithMaxRetries(tt.maxRetries),
				httpclient.WithInitialBackoff(5*time.Millisecond),
			)

			_, err := client.Get(context.Background(), server.URL)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, tt.status, httpclient.StatusCode(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(calls))
		})
	}
}

func TestDefaultClient_Get_Observer(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var (
		mu       sync.Mutex
		statuses []int
		errs     []error
	)
	client := httpclient.NewDefaultClient(5*time.Second, httpclient.WithObserver(
		func(_ context.Context, _ string, statusCode int, _ time.Duration, err error) {
			mu.Lock()
			defer mu.Unlock()
			statuses = append(statuses, statusCode)
			errs = append(errs, err)
		}))

	_, err := client.Get(context.Background(), server.URL+"/ok")
	require.NoError(t, err)
	_, err = client.Get(context.Background(), server.URL+"/missing")
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, statuses)
	assert.NoError(t, errs[0])
	assert.Error(t, errs[1])
}

func TestDefaultClient_Get_RateLimit(t *testing.T) {
	t.Parallel()

	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// One token per 50ms with no burst headroom: three calls need at least two refills.
	client := httpclient.NewDefaultClient(5*time.Second, httpclient.WithRateLimit(20, 1))

	start := time.Now()
	for range 3 {
		_, err := client.Get(context.Background(), server.URL)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestDefaultClient_Get_RateLimitHonoursContext(t *testing.T) {
	t.Parallel()

	client := httpclient.NewDefaultClient(5*time.Second, httpclient.WithRateLimit(0.001, 1))
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Get(ctx, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}

func TestDefaultClient_Get_ExtraHeaders(t *testing.T) {
	t.Parallel()

	var received http.Header
	server := newTestServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.NewDefaultClient(5*time.Second,
		httpclient.WithHeader("Origin", "https://schoolgis.nic.in"),
		httpclient.WithHeader("Accept", "*/*"),
	)

	_, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "https://schoolgis.nic.in", received.Get("Origin"))
	assert.Equal(t, "*/*", received.Get("Accept"))
	assert.Equal(t, httpclient.UserAgent, received.Get("User-Agent"))
}
