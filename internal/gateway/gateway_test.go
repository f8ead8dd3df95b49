// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.header = r.Header.Clone()
		captured.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func newTestGateway(t *testing.T, baseURL string, tokens TokenProvider) *Gateway {
	t.Helper()

	g, err := New(config.ClientAdapter{HTTPAddress: baseURL}, tokens, logger.Nop())
	require.NoError(t, err)
	return g
}

func TestRequest_UsesStoredToken(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	g := newTestGateway(t, srv.URL, NewMemoryTokenStore("stored-token"))

	_, err := g.Request(context.Background(), "/users/me", Options{})
	require.NoError(t, err)

	assert.Equal(t, "Bearer stored-token", captured.header.Get("Authorization"))
}

func TestRequest_ExplicitTokenWins(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	g := newTestGateway(t, srv.URL, NewMemoryTokenStore("stored-token"))

	_, err := g.Request(context.Background(), "/users/me", Options{Token: "explicit"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer explicit", captured.header.Get("Authorization"))
}

func TestRequest_BlankExplicitTokenStillOverrides(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	g := newTestGateway(t, srv.URL, NewMemoryTokenStore("stored-token"))

	_, err := g.Request(context.Background(), "/users/me", Options{Token: "  "})
	require.NoError(t, err)

	auth := captured.header.Get("Authorization")
	assert.True(t, strings.HasPrefix(auth, "Bearer"), auth)
	assert.NotContains(t, auth, "stored-token")
}

func TestRequest_RejectsForeignEndpoints(t *testing.T) {
	var foreignHits atomic.Int32
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		foreignHits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(foreign.Close)

	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	tokens := &countingTokens{token: "secret"}
	g := newTestGateway(t, srv.URL, tokens)

	endpoints := []string{
		foreign.URL + "/steal",
		"//" + strings.TrimPrefix(foreign.URL, "http://") + "/steal",
		"https://example.com/users/me",
	}
	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			resp, err := g.Request(context.Background(), endpoint, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEndpoint)
			assert.Nil(t, resp)
		})
	}

	assert.Zero(t, foreignHits.Load())
	assert.Zero(t, tokens.calls.Load(), "token must not be resolved for a rejected endpoint")
}

func TestRequest_RelativeEndpointWithQuery(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `[]`)
	g := newTestGateway(t, srv.URL, nil)

	_, err := g.Request(context.Background(), "/jobs/?search=go&status=open", Options{})
	require.NoError(t, err)
	assert.Equal(t, "/jobs/", captured.path)
	assert.Equal(t, "search=go&status=open", captured.query)
}

// countingTokens records how often the gateway asks for the stored token.
type countingTokens struct {
	token string
	calls atomic.Int32
}

func (c *countingTokens) GetToken(context.Context) (string, bool) {
	c.calls.Add(1)
	return c.token, true
}

func TestRequest_AnonymousWithoutToken(t *testing.T) {
	tests := []struct {
		name   string
		tokens TokenProvider
	}{
		{name: "nil provider", tokens: nil},
		{name: "empty store", tokens: NewMemoryTokenStore("")},
		{name: "blank static token", tokens: StaticToken("  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := newTestServer(t, http.StatusOK, `{}`)
			g := newTestGateway(t, srv.URL, tt.tokens)

			_, err := g.Request(context.Background(), "/jobs/available", Options{})
			require.NoError(t, err)

			_, present := captured.header["Authorization"]
			assert.False(t, present)
		})
	}
}

func TestRequest_AnonymousSkipsStoredToken(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	g := newTestGateway(t, srv.URL, NewMemoryTokenStore("stale"))

	_, err := g.Request(context.Background(), "/auth/login", Options{Method: http.MethodPost, Anonymous: true})
	require.NoError(t, err)
	assert.Empty(t, captured.header.Get("Authorization"))

	_, err = g.Request(context.Background(), "/users/me", Options{Anonymous: true, Token: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh", captured.header.Get("Authorization"))
}

func TestRequest_MergesHeaders(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	g := newTestGateway(t, srv.URL, nil)

	_, err := g.Request(context.Background(), "/jobs/", Options{
		Headers: map[string]string{"X-Custom": "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", captured.header.Get("Content-Type"))
	assert.Equal(t, "1", captured.header.Get("X-Custom"))
}

func TestRequest_CallerContentTypeWins(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	g := newTestGateway(t, srv.URL, nil)

	_, err := g.Request(context.Background(), "/auth/login", Options{
		Method:  http.MethodPost,
		Headers: map[string]string{"content-type": "application/x-www-form-urlencoded"},
		Body:    []byte("username=a&password=b"),
	})
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", captured.header.Get("Content-Type"))
	assert.Equal(t, "username=a&password=b", string(captured.body))
}

func TestRequest_MethodBodyAndEndpoint(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusCreated, `{"id": 1}`)
	g := newTestGateway(t, srv.URL+"/", nil)

	body, err := JSONBody(map[string]any{"proposal": "hi", "bid_amount": 100})
	require.NoError(t, err)

	resp, err := g.Request(context.Background(), "/jobs/7/apply?notify=true", Options{
		Method: "post",
		Body:   body,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/jobs/7/apply", captured.path)
	assert.Equal(t, "notify=true", captured.query)
	assert.JSONEq(t, `{"proposal": "hi", "bid_amount": 100}`, string(captured.body))
}

func TestRequest_DefaultsToGet(t *testing.T) {
	srv, captured := newTestServer(t, http.StatusOK, `[]`)
	g := newTestGateway(t, srv.URL, nil)

	_, err := g.Request(context.Background(), "/jobs/my", Options{})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, captured.method)
}

func TestRequest_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		message  string
		sentinel error
	}{
		{name: "detail", status: http.StatusNotFound, body: `{"detail": "Not found"}`, message: "Not found", sentinel: ErrNotFound},
		{name: "empty body", status: http.StatusInternalServerError, body: ``, message: DefaultErrorMessage, sentinel: ErrInternalServerError},
		{name: "html body", status: http.StatusInternalServerError, body: `<html>oops</html>`, message: DefaultErrorMessage, sentinel: ErrInternalServerError},
		{name: "no detail field", status: http.StatusBadRequest, body: `{"error": "x"}`, message: DefaultErrorMessage, sentinel: ErrBadRequest},
		{name: "empty detail", status: http.StatusForbidden, body: `{"detail": ""}`, message: DefaultErrorMessage, sentinel: ErrForbidden},
		{name: "numeric detail", status: http.StatusConflict, body: `{"detail": 42}`, message: DefaultErrorMessage, sentinel: ErrConflict},
		{name: "validation list", status: http.StatusUnprocessableEntity,
			body:    `{"detail": [{"loc": ["body", "email"], "msg": "field required", "type": "value_error.missing"}, {"msg": "too short"}]}`,
			message: "field required; too short", sentinel: ErrUnprocessable},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail": "Could not validate credentials"}`, message: "Could not validate credentials", sentinel: ErrUnauthorized},
		{name: "bad gateway", status: http.StatusBadGateway, body: `{"detail": "upstream"}`, message: "upstream", sentinel: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			g := newTestGateway(t, srv.URL, nil)

			resp, err := g.Request(context.Background(), "/x", Options{})
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.EqualError(t, err, tt.message)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.body, string(apiErr.Body))
		})
	}
}

func TestRequest_UnmappedStatusHasNoSentinel(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusTeapot, `{"detail": "teapot"}`)
	g := newTestGateway(t, srv.URL, nil)

	_, err := g.Request(context.Background(), "/x", Options{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "teapot", apiErr.Message)
	assert.Nil(t, apiErr.Unwrap())
}

func TestRequest_TransportErrorIsNotWrapped(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	g := newTestGateway(t, "http://"+addr, nil)

	_, err = g.Request(context.Background(), "/health", Options{})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr))
}

func TestRequest_HonorsContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	g := newTestGateway(t, srv.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Request(ctx, "/health", Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_InvalidAddress(t *testing.T) {
	_, err := New(config.ClientAdapter{HTTPAddress: "  "}, nil, nil)
	assert.Error(t, err)

	_, err = New(config.ClientAdapter{HTTPAddress: "http://"}, nil, nil)
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "localhost:8000", want: "http://localhost:8000"},
		{input: "http://localhost:8000/", want: "http://localhost:8000"},
		{input: " https://api.kardash.com/v1/ ", want: "https://api.kardash.com/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONBody_Unsupported(t *testing.T) {
	_, err := JSONBody(make(chan int))
	assert.Error(t, err)

	body, err := JSONBody(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, string(body))
}

func TestAPIError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("get job: %w", newAPIError(http.StatusNotFound, []byte(`{"detail":"Job not found"}`)))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Job not found", apiErr.Message)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "get job: Job not found")
}
