// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the mock KARDASH backend
// writes into the "detail" and "message" fields of its responses.
//
// The wording follows the real backend, so clients that show the detail
// verbatim behave the same against either server.
package app

// Authentication and authorization.
const (
	// MsgNotAuthenticated is returned when a protected route is called
	// without an "Authorization: Bearer" header.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidToken is returned when the bearer token is expired, forged or
	// names an unknown user.
	MsgInvalidToken = "Could not validate credentials"

	// MsgNotEnoughPermissions is returned when a non-admin calls an admin
	// route.
	MsgNotEnoughPermissions = "Not enough permissions"

	// MsgAccessDenied is returned when an admin calls a freelancer-only route.
	MsgAccessDenied = "Access denied"

	// MsgIncorrectCredentials is returned by the login route.
	MsgIncorrectCredentials = "Incorrect email or password"

	// MsgInactiveUser is returned when a deactivated account logs in or
	// presents a token.
	MsgInactiveUser = "Inactive user"
)

// Users.
const (
	MsgEmailTaken     = "Email already registered"
	MsgUserNotFound   = "User not found"
	MsgDeactivateSelf = "Cannot deactivate yourself"
)

// Jobs.
const (
	MsgJobNotFound      = "Job not found"
	MsgJobNotOpen       = "Job is not open for applications"
	MsgAlreadyApplied   = "You have already applied for this job"
	MsgJobNotInProgress = "Job is not in progress"
	MsgJobNotDelivered  = "Job must be in 'delivered' status to complete"
	MsgJobDeleted       = "Job deleted successfully"
)

// Bots, notifications and earnings.
const (
	MsgBotNameTaken          = "Bot account name already exists"
	MsgBotNotFound           = "Bot account not found"
	MsgNotificationNotFound  = "Notification not found"
	MsgAllNotificationsRead  = "All notifications marked as read"
	MsgUnknownEarningsPeriod = "Unknown earnings period"
)

// Transport level.
const (
	// MsgInvalidJSON is the validation message for an undecodable body.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip encoded body cannot be read.
	MsgInvalidGzip = "Invalid gzip data"

	MsgNotFound            = "Not Found"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgInternalServerError = "Internal Server Error"
)
