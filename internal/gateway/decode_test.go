// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	ID     int64  `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Budget string `json:"budget"`
}

type stubRequester struct {
	resp *Response
	err  error

	endpoint string
	opts     Options
}

func (s *stubRequester) Request(_ context.Context, endpoint string, opts Options) (*Response, error) {
	s.endpoint = endpoint
	s.opts = opts
	return s.resp, s.err
}

func TestDo_NoContentIsNil(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNoContent, ``)
	g := newTestGateway(t, srv.URL, nil)

	job, err := Do[testJob](context.Background(), g, "/notifications/1/mark-read", Options{Method: http.MethodPost})
	require.NoError(t, err)
	assert.Nil(t, job)

	list, err := Do[[]testJob](context.Background(), g, "/notifications/1/mark-read", Options{Method: http.MethodPost})
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestDo_ReturnsParsedValueUnchanged(t *testing.T) {
	body := `{"id": 3, "title": "Logo design", "nested": {"a": [1, 2, "x"]}, "flag": null}`
	srv, _ := newTestServer(t, http.StatusOK, body)
	g := newTestGateway(t, srv.URL, nil)

	got, err := Do[map[string]any](context.Background(), g, "/jobs/3", Options{})
	require.NoError(t, err)
	require.NotNil(t, got)

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &want))
	assert.Equal(t, want, *got)
}

func TestDo_DecodesTypedResult(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[{"id": 1, "title": "a", "budget": "$100"}, {"id": 2, "title": "b"}]`)
	g := newTestGateway(t, srv.URL, nil)

	jobs, err := Do[[]testJob](context.Background(), g, "/jobs/", Options{})
	require.NoError(t, err)
	require.NotNil(t, jobs)
	assert.Equal(t, []testJob{{ID: 1, Title: "a", Budget: "$100"}, {ID: 2, Title: "b"}}, *jobs)
}

func TestDo_MalformedJSONIsDecodeError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated", body: `{"id": 1`},
		{name: "empty", body: ``},
		{name: "text", body: `ok`},
		{name: "wrong type", body: `{"id": "one", "title": "a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, tt.body)
			g := newTestGateway(t, srv.URL, nil)

			job, err := Do[testJob](context.Background(), g, "/jobs/1", Options{})
			assert.Nil(t, job)
			assert.ErrorIs(t, err, ErrDecodeResponse)
			assert.NotErrorIs(t, err, ErrSchemaValidation)
		})
	}
}

func TestDo_SchemaViolation(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"id": 1}`)
	g := newTestGateway(t, srv.URL, nil)

	job, err := Do[testJob](context.Background(), g, "/jobs/1", Options{})
	assert.Nil(t, job)
	require.ErrorIs(t, err, ErrSchemaValidation)
	assert.NotErrorIs(t, err, ErrDecodeResponse)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "gateway.testJob", vErr.Type)

	var fieldErrs validator.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "Title", fieldErrs[0].Field())
}

func TestDo_SchemaViolationInSlice(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[{"id": 1, "title": "a"}, {"title": "b"}]`)
	g := newTestGateway(t, srv.URL, nil)

	_, err := Do[[]*testJob](context.Background(), g, "/jobs/", Options{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "[]*gateway.testJob[1]", vErr.Type)
}

func TestDo_PropagatesRequestError(t *testing.T) {
	apiErr := newAPIError(http.StatusNotFound, []byte(`{"detail": "Not found"}`))
	r := &stubRequester{err: apiErr}

	_, err := Do[testJob](context.Background(), r, "/jobs/9", Options{Token: "t"})
	assert.Same(t, apiErr, err)
	assert.Equal(t, "/jobs/9", r.endpoint)
	assert.Equal(t, "t", r.opts.Token)
}

func TestDecode_ScalarResults(t *testing.T) {
	n, err := Decode[int](&Response{StatusCode: http.StatusOK, Body: []byte(`5`)})
	require.NoError(t, err)
	assert.Equal(t, 5, *n)

	v, err := Decode[any](&Response{StatusCode: http.StatusOK, Body: []byte(`null`)})
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Nil(t, *v)
}
