// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrEmptyResponse is returned when an endpoint that must return an object
// answers 204 No Content.
var ErrEmptyResponse = errors.New("empty response from server")
