package store

import "errors"

// Sentinel errors returned by the session store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSlotNotFound is returned when a named slot holds no value.
	ErrSlotNotFound = errors.New("session slot not found")

	// ErrEmptySlotName is returned when a slot is addressed without a name.
	ErrEmptySlotName = errors.New("empty session slot name")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan session slot row")
)
