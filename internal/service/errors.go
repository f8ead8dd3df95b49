package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrAccessDenied       = errors.New("access denied")
	ErrNotFound           = errors.New("not found")

	ErrLoginOnServer    = errors.New("login on server failed")
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrSaveSession      = errors.New("error saving session")
)
