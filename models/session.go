package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a KARDASH access token. The subject is the
// user id.
type Claims struct {
	jwt.RegisteredClaims
	Role UserRole `json:"role,omitempty"`
}

// Session describes the locally stored login state.
type Session struct {
	// LoggedIn is true when a token is stored.
	LoggedIn bool `json:"logged_in"`
	// Subject is the "sub" claim of the stored token, read without
	// verifying the signature.
	Subject string `json:"subject,omitempty"`
	// Role is the role claim, if the backend sets one.
	Role UserRole `json:"role,omitempty"`
	// ExpiresAt is the "exp" claim; zero when absent or unreadable.
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	// Expired is true when ExpiresAt is in the past.
	Expired bool `json:"expired"`
	// User is the profile cached at login, if any.
	User *User `json:"user,omitempty"`
}
