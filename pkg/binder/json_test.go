package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qauto/garage/pkg/binder"
)

type signupBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		wantErr     error
		want        signupBody
	}{
		{
			name:        "valid body",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"name":"John","email":"john@mail.com","password":"Secret123"}`,
			want:        signupBody{Name: "John", Email: "john@mail.com", Password: "Secret123"},
		},
		{
			name:        "content type with charset",
			method:      http.MethodPost,
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"John"}`,
			want:        signupBody{Name: "John"},
		},
		{
			name:    "missing content type",
			method:  http.MethodPost,
			body:    `{"name":"John"}`,
			wantErr: binder.ErrMissingContentType,
		},
		{
			name:        "wrong media type",
			method:      http.MethodPost,
			contentType: "text/plain",
			body:        `{"name":"John"}`,
			wantErr:     binder.ErrUnsupportedMediaType,
		},
		{
			name:        "unknown field",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"nickname":"jj"}`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "malformed json",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"name":`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "empty body",
			method:      http.MethodPost,
			contentType: "application/json",
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:        "trailing data",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"name":"John"}{"name":"Jane"}`,
			wantErr:     binder.ErrFailedToParseJSON,
		},
		{
			name:    "get without body",
			method:  http.MethodGet,
			wantErr: binder.ErrBinderNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, "/api/auth/signup", strings.NewReader(tt.body))
			if tt.body == "" {
				req.ContentLength = 0
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got signupBody
			err := binder.JSON()(req, &got)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSON_TooLarge(t *testing.T) {
	t.Parallel()

	payload := `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	var got signupBody
	err := binder.JSON()(req, &got)
	require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	assert.Contains(t, err.Error(), "too large")
}

func TestJSON_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	var got signupBody
	err := binder.JSON()(req, &got)
	require.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "empty token", header: "Bearer   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := binder.BearerToken(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, binder.ErrMissingBearerToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
