// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"strings"
	"sync"
)

// TokenProvider yields the persisted session token, if any.
// Implementations must be safe for concurrent reads.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, bool)
}

// MemoryTokenStore keeps the session token in memory.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokenStore returns a store holding token. An empty token means
// no session.
func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: strings.TrimSpace(token)}
}

// GetToken implements [TokenProvider].
func (m *MemoryTokenStore) GetToken(_ context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

// SetToken replaces the stored token.
func (m *MemoryTokenStore) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
}

// ClearToken removes the stored token.
func (m *MemoryTokenStore) ClearToken() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

// StaticToken is a fixed credential, e.g. one passed on the command line.
type StaticToken string

// GetToken implements [TokenProvider].
func (s StaticToken) GetToken(_ context.Context) (string, bool) {
	token := strings.TrimSpace(string(s))
	return token, token != ""
}

// noToken is used when the gateway is built without a provider.
type noToken struct{}

func (noToken) GetToken(_ context.Context) (string, bool) { return "", false }
