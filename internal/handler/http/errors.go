// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware. Callers can match against
// them with [errors.Is].
var (
	// ErrNotAuthenticated is returned when the request carries no usable
	// "Authorization: Bearer" header.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidToken is returned when the bearer token is expired, forged or
	// names an unknown user.
	ErrInvalidToken = errors.New("could not validate credentials")

	// ErrNotEnoughPermissions is returned when a non-admin calls an admin
	// route.
	ErrNotEnoughPermissions = errors.New("not enough permissions")

	// errAccessDenied rejects an admin on a freelancer-only route.
	errAccessDenied = errors.New("access denied")
)
