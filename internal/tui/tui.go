// Package tui is the interactive terminal front end of the kardash client:
// a login form, the role-specific dashboard and the notification inbox with
// a live unread badge.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/service"
	"github.com/MKhiriev/kardash/internal/workers"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	tokens   gateway.TokenProvider
	workers  config.ClientWorkers
	logger   *logger.Logger
}

// New returns a TUI over services. tokens is read when the user copies the
// session token.
func New(services *service.ClientServices, tokens gateway.TokenProvider, cfg config.ClientWorkers, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: no client services")
	}
	if tokens == nil {
		return nil, errors.New("tui: no token provider")
	}
	return &TUI{services: services, tokens: tokens, workers: cfg, logger: logger}, nil
}

// Run shows the TUI until the user quits. It opens on the dashboard when a
// live session is stored and on the login form otherwise.
func (t *TUI) Run(ctx context.Context) error {
	start := screenLogin
	session, err := t.services.AuthService.Session(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Str("func", "TUI.Run").Msg("stored session is unreadable")
	} else if session.LoggedIn && !session.Expired {
		start = screenDashboard
	}

	var program *tea.Program
	poller := workers.NewNotificationPoller(t.services.NotificationService, t.workers.PollInterval, func(count int) {
		program.Send(unreadCountMsg{count: count})
	}, t.logger.GetChildLogger())
	defer poller.Stop()

	m := newModel(ctx, modelDeps{
		auth:          t.services.AuthService,
		dashboard:     t.services.DashboardService,
		notifications: t.services.NotificationService,
		tokens:        t.tokens,
		poller:        poller,
		copyText:      clipboard.WriteAll,
	}, start)

	program = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	result, ok := finalModel.(model)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
