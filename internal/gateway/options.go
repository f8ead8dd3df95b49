// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Options describes one outbound call besides its endpoint.
// The zero value is an anonymous-capable GET without a body.
type Options struct {
	// Method is the HTTP verb. Empty means GET.
	Method string
	// Headers are merged over the defaults; the caller wins on collision.
	Headers map[string]string
	// Body is the pre-serialized payload, sent as is.
	Body []byte
	// Token overrides the persisted session token when non-empty.
	Token string
	// Anonymous skips the token provider. An explicit Token is still sent.
	Anonymous bool
}

func (o Options) method() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return o.Method
}

// JSONBody serializes v for use as [Options.Body].
func JSONBody(v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %w", err)
	}
	return body, nil
}
