package server

import "context"

// Server is the lifecycle of the placeholder backend.
type Server interface {
	// RunServer serves until a stop signal arrives and blocks until the
	// server has shut down.
	RunServer()

	// Run serves until ctx is done.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
