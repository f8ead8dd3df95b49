// Package models holds the KARDASH API data transfer objects shared by the
// client layers and the placeholder backend.
//
// Response types carry `validate` tags: the request gateway checks decoded
// payloads against them before handing them to callers.
package models
