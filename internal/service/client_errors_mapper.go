// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/kardash/internal/gateway"
)

// mapAdapterError attaches a service sentinel to the statuses the user has
// to act on. The original error stays in the chain, so its message and
// *gateway.APIError remain reachable.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	case errors.Is(err, gateway.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, gateway.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
