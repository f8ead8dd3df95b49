package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/kardash/internal/adapter"
	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/store"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

type clientAuthService struct {
	sessions store.Sessions
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
	now      func() time.Time
}

func NewClientAuthService(sessions store.Sessions, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger, now: time.Now}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	creds := models.UserLogin{Email: strings.TrimSpace(email), Password: password}
	if err := validateInput(creds); err != nil {
		return models.User{}, err
	}

	token, err := a.adapter.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	// the new token is not stored yet, so the profile is fetched with it explicitly
	user, err := a.adapter.MeWithToken(ctx, token.AccessToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	if err = a.sessions.SaveToken(ctx, token.AccessToken); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrSaveSession, err)
	}
	if err = a.sessions.SaveProfile(ctx, user); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.Login").Msg("profile is not cached")
	}

	a.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("logged in")
	return user, nil
}

func (a *clientAuthService) Register(ctx context.Context, user models.UserCreate) (models.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Role == "" {
		user.Role = models.RoleFreelancer
	}
	if err := validateInput(user); err != nil {
		return models.User{}, err
	}

	created, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return created, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.ClearToken(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, error) {
	token, ok := a.sessions.GetToken(ctx)
	if !ok {
		return models.Session{}, nil
	}

	session := models.Session{LoggedIn: true}

	// tokens are opaque to the client; claims are informational only
	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		a.logger.Debug().Err(err).Msg("stored token has no readable claims")
	} else {
		session.Subject = claims.Subject
		session.Role = claims.Role
		if claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Time
			session.Expired = a.now().After(session.ExpiresAt)
		}
	}

	profile, err := a.sessions.Profile(ctx)
	if err != nil {
		return session, fmt.Errorf("read session: %w", err)
	}
	session.User = profile

	return session, nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	if err = a.sessions.SaveProfile(ctx, user); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.Profile").Msg("profile is not cached")
	}
	return user, nil
}

func (a *clientAuthService) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	update.Role, update.Status = nil, nil
	if err := validateInput(update); err != nil {
		return models.User{}, err
	}

	user, err := a.adapter.UpdateMe(ctx, update)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	if err = a.sessions.SaveProfile(ctx, user); err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.UpdateProfile").Msg("profile is not cached")
	}
	return user, nil
}
