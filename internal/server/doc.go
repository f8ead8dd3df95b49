// Package server runs the placeholder backend's HTTP server, including
// signal handling and graceful shutdown.
package server
