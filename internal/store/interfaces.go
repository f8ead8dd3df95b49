// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the kardash client session: a handful of named
// slots in a local SQLite file, the main one holding the bearer token.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/kardash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Slot is one named value of the session database.
type Slot struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}

// SlotRepository is the low-level access to session slots.
type SlotRepository interface {
	// Get returns the slot or ErrSlotNotFound.
	Get(ctx context.Context, name string) (Slot, error)
	// Put creates or replaces the slot.
	Put(ctx context.Context, name, value string) error
	// Delete removes the slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, name string) error
}

// Sessions owns the lifecycle of the persisted session token.
// It also satisfies gateway.TokenProvider.
type Sessions interface {
	GetToken(ctx context.Context) (string, bool)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
	SaveProfile(ctx context.Context, user models.User) error
	Profile(ctx context.Context) (*models.User, error)
}
