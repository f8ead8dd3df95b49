// Package mockdata is the in-memory state of the placeholder KARDASH backend.
//
// It is seeded with the jobs, bot accounts, users and notifications the
// original dashboards hard-code, plus two loginable accounts
// (admin@kardash.com / admin and freelancer@kardash.com / freelancer).
// A [Catalog] is safe for concurrent use; its errors carry the backend's
// "detail" messages verbatim.
package mockdata
