// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/kardash/internal/gateway"
)

const serverUnavailableMessage = "Network is down or the server is unavailable"

// humanizeError turns err into a single line for the status area. Backend
// rejections keep the message the backend sent.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailableMessage
	}

	return err.Error()
}
