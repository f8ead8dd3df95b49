// Package http implements the placeholder KARDASH backend used to run the
// client end to end.
//
// It exposes the same routes as the real API over an in-memory
// [mockdata.Catalog]: bearer authentication with role checks, FastAPI style
// {"detail": ...} error bodies and 422 validation errors, request tracing,
// access logging and response compression.
package http
