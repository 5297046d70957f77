package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndValidateURLParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		paramValue string
		wantValue  string
		wantErrMsg string
	}{
		{name: "plain value", paramValue: "0190c2f4", wantValue: "0190c2f4"},
		{name: "encoded value", paramValue: "a%2Db", wantValue: "a-b"},
		{name: "empty value", paramValue: "", wantErrMsg: "id cannot be empty"},
		{name: "encoded whitespace", paramValue: "a%20b", wantErrMsg: "id cannot contain whitespace"},
		{name: "bad encoding", paramValue: "%zz", wantErrMsg: "invalid URL encoding in id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.paramValue)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			got, err := GetAndValidateURLParam(req, "id")
			if tt.wantErrMsg != "" {
				require.EqualError(t, err, tt.wantErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestQueryInt(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?page=3&limit=abc&blank=", nil)

	v, err := QueryInt(req, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = QueryInt(req, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = QueryInt(req, "blank", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = QueryInt(req, "limit", 1)
	require.EqualError(t, err, "limit must be an integer")
}

func TestDecodeJSONBody(t *testing.T) {
	t.Parallel()

	type body struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{name: "valid", payload: `{"name":"x"}`},
		{name: "unknown field", payload: `{"name":"x","extra":1}`, wantErr: "invalid request body"},
		{name: "malformed", payload: `{`, wantErr: "invalid request body"},
		{name: "too large", payload: `{"name":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`, wantErr: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			var dst body
			err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", dst.Name)
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteErrorResponse(rr, "bad things", http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"bad things"}`, rr.Body.String())
}
