package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/kardash/internal/service"
	"github.com/MKhiriev/kardash/models"
)

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	user, err := a.services.AuthService.Login(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return a.printJSON(user)
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password, at least 6 characters")
	name := fs.String("name", "", "display name")
	role := fs.String("role", string(models.RoleFreelancer), "freelancer or admin")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	user, err := a.services.AuthService.Register(ctx, models.UserCreate{
		Email:    *email,
		Name:     *name,
		Role:     models.UserRole(*role),
		Password: *password,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return a.printJSON(user)
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := parseFlags(newFlagSet("logout"), args); err != nil {
		return err
	}

	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	return a.printJSON(models.Message{Message: "Logged out"})
}

func (a *App) whoami(ctx context.Context, args []string) error {
	fs := newFlagSet("whoami")
	refresh := fs.Bool("refresh", false, "fetch the profile from the backend")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *refresh {
		user, err := a.services.AuthService.Profile(ctx)
		if err != nil {
			return fmt.Errorf("whoami: %w", err)
		}
		return a.printJSON(user)
	}

	session, err := a.services.AuthService.Session(ctx)
	if err != nil {
		return fmt.Errorf("whoami: %w", err)
	}
	return a.printJSON(session)
}

func (a *App) profile(ctx context.Context, args []string) error {
	fs := newFlagSet("profile")
	name := fs.String("name", "", "display name")
	skills := fs.String("skills", "", "comma separated skill tags")
	rate := fs.Float64("rate", 0, "hourly rate")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var update models.UserUpdate
	if isSet(fs, "name") {
		update.Name = name
	}
	if isSet(fs, "skills") {
		update.SkillTags = skills
	}
	if isSet(fs, "rate") {
		update.HourlyRate = rate
	}

	// nothing to change: show the current profile
	if update == (models.UserUpdate{}) {
		return a.whoami(ctx, []string{"-refresh"})
	}

	user, err := a.services.AuthService.UpdateProfile(ctx, update)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return a.printJSON(user)
}

func (a *App) token(ctx context.Context, args []string) error {
	fs := newFlagSet("token")
	copyToken := fs.Bool("copy", false, "copy the token to the clipboard instead of printing it")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	token, ok := a.tokens.GetToken(ctx)
	if !ok {
		return service.ErrNotLoggedIn
	}

	if *copyToken {
		if err := a.copyText(token); err != nil {
			return fmt.Errorf("copy token: %w", err)
		}
		return a.printJSON(models.Message{Message: "Token copied to clipboard"})
	}

	return a.printJSON(models.Token{AccessToken: token, TokenType: "bearer"})
}
