// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultErrorMessage is the message of a failed call whose body carries no
// usable "detail".
const DefaultErrorMessage = "An API error occurred"

// Status sentinels. An [*APIError] unwraps to the one matching its status.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrDecodeResponse marks a success response whose body is not valid JSON
	// for the requested type.
	ErrDecodeResponse = errors.New("error decoding response body")
	// ErrSchemaValidation marks a decoded result that violates its schema.
	ErrSchemaValidation = errors.New("response schema validation failed")
	// ErrInvalidEndpoint is returned before any request is sent when the
	// endpoint is an absolute URL or names a host.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// APIError is a server-reported failure: any status outside 200..299.
type APIError struct {
	StatusCode int
	// Message is the server's "detail" or DefaultErrorMessage.
	Message string
	// Body is the raw response body. It is empty when the server sent none,
	// which is the only way to tell an empty body from an unparseable one.
	Body []byte
}

// Error returns exactly the message.
func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return nil
	}
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    errorMessage(body),
		Body:       body,
	}
}

// errorMessage extracts "detail" from an error body. Parse failures are
// swallowed: the caller always gets a message.
func errorMessage(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return DefaultErrorMessage
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		if detail == "" {
			return DefaultErrorMessage
		}
		return detail
	}

	// request validation errors: [{"loc": [...], "msg": "...", "type": "..."}]
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err != nil {
		return DefaultErrorMessage
	}

	msgs := make([]string, 0, len(items))
	for _, item := range items {
		if item.Msg != "" {
			msgs = append(msgs, item.Msg)
		}
	}
	if len(msgs) == 0 {
		return DefaultErrorMessage
	}

	return strings.Join(msgs, "; ")
}

// ValidationError reports a decoded result that broke its `validate` tags.
type ValidationError struct {
	// Type is the Go type that failed validation.
	Type string
	// Err is the validator's error, usually validator.ValidationErrors.
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSchemaValidation, e.Type, e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrSchemaValidation, e.Err}
}
