package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/models"
)

// profileSlotSuffix names the slot caching the profile next to the token.
const profileSlotSuffix = "_user"

// SessionStore keeps the session token in a named slot. The gateway reads
// it through GetToken; login and logout flows write it.
type SessionStore struct {
	slots       SlotRepository
	tokenSlot   string
	profileSlot string
	logger      *logger.Logger
}

// NewSessionStore returns a store using tokenSlot as the token's slot name.
func NewSessionStore(slots SlotRepository, tokenSlot string, log *logger.Logger) *SessionStore {
	return &SessionStore{
		slots:       slots,
		tokenSlot:   tokenSlot,
		profileSlot: tokenSlot + profileSlotSuffix,
		logger:      log,
	}
}

// GetToken reports the stored token. Read failures are logged and reported
// as no token, so a broken session file degrades to anonymous requests.
func (s *SessionStore) GetToken(ctx context.Context) (string, bool) {
	slot, err := s.slots.Get(ctx, s.tokenSlot)
	if err != nil {
		if !errors.Is(err, ErrSlotNotFound) {
			s.logger.Err(err).Str("func", "SessionStore.GetToken").Msg("failed to read session token")
		}
		return "", false
	}

	token := strings.TrimSpace(slot.Value)
	return token, token != ""
}

// SaveToken stores token, replacing any previous one.
func (s *SessionStore) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("refusing to save an empty token")
	}

	if err := s.slots.Put(ctx, s.tokenSlot, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

// ClearToken removes the token and the cached profile.
func (s *SessionStore) ClearToken(ctx context.Context) error {
	if err := s.slots.Delete(ctx, s.tokenSlot); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	if err := s.slots.Delete(ctx, s.profileSlot); err != nil {
		return fmt.Errorf("clear session profile: %w", err)
	}
	return nil
}

// SaveProfile caches the logged-in user's profile.
func (s *SessionStore) SaveProfile(ctx context.Context, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session profile: %w", err)
	}

	if err = s.slots.Put(ctx, s.profileSlot, string(payload)); err != nil {
		return fmt.Errorf("save session profile: %w", err)
	}
	return nil
}

// Profile returns the cached profile, or nil when none is stored.
func (s *SessionStore) Profile(ctx context.Context) (*models.User, error) {
	slot, err := s.slots.Get(ctx, s.profileSlot)
	if errors.Is(err, ErrSlotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session profile: %w", err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(slot.Value), &user); err != nil {
		return nil, fmt.Errorf("decode session profile: %w", err)
	}
	return &user, nil
}
