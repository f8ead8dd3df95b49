// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/kardash/internal/gateway"
)

// object decodes a mandatory JSON object. A 204 reply is ErrEmptyResponse.
func object[T any](ctx context.Context, r gateway.Requester, op, endpoint string, opts gateway.Options) (T, error) {
	var zero T

	result, err := gateway.Do[T](ctx, r, endpoint, opts)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	if result == nil {
		return zero, fmt.Errorf("%s: %w", op, ErrEmptyResponse)
	}

	return *result, nil
}

// list decodes a JSON array. A 204 reply is an empty list.
func list[T any](ctx context.Context, r gateway.Requester, op, endpoint string, opts gateway.Options) ([]T, error) {
	result, err := gateway.Do[[]T](ctx, r, endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if result == nil || *result == nil {
		return []T{}, nil
	}

	return *result, nil
}

// discard issues a call whose body is not needed; any 2xx is success.
func discard(ctx context.Context, r gateway.Requester, op, endpoint string, opts gateway.Options) error {
	if _, err := r.Request(ctx, endpoint, opts); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func jsonOptions(method string, body any) (gateway.Options, error) {
	payload, err := gateway.JSONBody(body)
	if err != nil {
		return gateway.Options{}, err
	}
	return gateway.Options{Method: method, Body: payload}, nil
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func jobPath(jobID int64, suffix string) string {
	return "/jobs/" + strconv.FormatInt(jobID, 10) + suffix
}

func userPath(userID int64, suffix string) string {
	return "/users/" + strconv.FormatInt(userID, 10) + suffix
}

func botPath(botID int64, suffix string) string {
	return "/bot-accounts/" + strconv.FormatInt(botID, 10) + suffix
}
