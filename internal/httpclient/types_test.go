package httpclient_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolgis/schoolsync/internal/httpclient"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		statusCode    int
		url           string
		message       string
		expectedError string
		temporary     bool
	}{
		{
			name:          "not found",
			statusCode:    404,
			url:           "http://example.com",
			message:       "Not Found",
			expectedError: "HTTP 404 for URL http://example.com: Not Found",
		},
		{
			name:          "server error is temporary",
			statusCode:    500,
			url:           "http://udise.example/school/profile?schoolId=1",
			message:       "Internal Server Error",
			expectedError: "HTTP 500 for URL http://udise.example/school/profile?schoolId=1: Internal Server Error",
			temporary:     true,
		},
		{
			name:          "throttled is temporary",
			statusCode:    429,
			url:           "http://gis.example/query",
			message:       "Too Many Requests",
			expectedError: "HTTP 429 for URL http://gis.example/query: Too Many Requests",
			temporary:     true,
		},
		{
			name:          "empty message",
			statusCode:    403,
			url:           "http://example.com",
			expectedError: "HTTP 403 for URL http://example.com: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := httpclient.NewHTTPError(tt.statusCode, tt.url, tt.message)

			assert.Equal(t, tt.expectedError, err.Error())
			assert.Equal(t, tt.temporary, err.Temporary())
		})
	}
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("fetch profile: %w", httpclient.NewHTTPError(502, "http://x", "Bad Gateway"))

	assert.Equal(t, 502, httpclient.StatusCode(wrapped))
	assert.Equal(t, 0, httpclient.StatusCode(errors.New("dial tcp: refused")))
	assert.Equal(t, 0, httpclient.StatusCode(nil))
}
