package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/service"
	"github.com/MKhiriev/kardash/internal/workers"
	"github.com/MKhiriev/kardash/models"
)

const statusTimeout = 2 * time.Second

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenNotifications
)

type modelDeps struct {
	auth          service.ClientAuthService
	dashboard     service.ClientDashboardService
	notifications service.ClientNotificationService
	tokens        gateway.TokenProvider
	poller        workers.Worker
	copyText      func(string) error
}

type model struct {
	ctx context.Context
	modelDeps

	screen  screen
	login   loginModel
	spinner spinner.Model
	loading bool

	user       *models.User
	freelancer *models.FreelancerDashboard
	admin      *models.AdminOverview
	inbox      []models.Notification
	cursor     int
	unread     int

	status     string
	errMsg     string
	quitByUser bool
}

func newModel(ctx context.Context, deps modelDeps, start screen) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		modelDeps: deps,
		screen:    start,
		login:     newLoginModel(),
		spinner:   s,
		loading:   start != screenLogin,
	}
}

func (m model) Init() tea.Cmd {
	if m.screen == screenLogin {
		return textinput.Blink
	}
	return tea.Batch(m.spinner.Tick, m.cmdLoadProfile())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
	case loginResultMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.login.errMsg = ""
		m.login.reset()
		return m.enterDashboard(msg.user)
	case profileLoadedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		return m.enterDashboard(msg.user)
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.errMsg = ""
		m.freelancer, m.admin = msg.freelancer, msg.admin
		return m, nil
	case notificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		m.errMsg = ""
		m.inbox = msg.items
		m.cursor = min(m.cursor, max(len(m.inbox)-1, 0))
		return m, nil
	case notificationsChangedMsg:
		if msg.err != nil {
			return m.handleError(msg.err)
		}
		if msg.allRead {
			m.unread = 0
		}
		return m, m.cmdLoadNotifications()
	case unreadCountMsg:
		m.unread = msg.count
		return m, nil
	case loggedOutMsg:
		m.screen = screenLogin
		m.loading = false
		m.user, m.freelancer, m.admin, m.inbox = nil, nil, nil, nil
		m.unread, m.cursor = 0, 0
		m.status = ""
		if msg.err != nil {
			m.login.errMsg = humanizeError(msg.err)
		}
		return m, textinput.Blink
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Session token copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	case screenNotifications:
		return m.updateNotifications(msg)
	}
	return m, nil
}

func (m model) View() string {
	switch m.screen {
	case screenDashboard:
		return m.viewDashboard()
	case screenNotifications:
		return m.viewNotifications()
	default:
		return m.login.View()
	}
}

func (m model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email, password := m.login.credentials()
			if email == "" || password == "" {
				m.login.errMsg = "Email and password are required"
				return m, nil
			}
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.updateInput(msg)
	return m, cmd
}

// updateShared handles the keys both signed-in screens understand.
func (m model) updateShared(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quitShort):
		m.quitByUser = true
		return m, tea.Quit, true
	case key.Matches(msg, keys.copyToken):
		return m, m.cmdCopyToken(), true
	case key.Matches(msg, keys.logout):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLogout()), true
	}
	return m, nil, false
}

func (m model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if next, cmd, handled := m.updateShared(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.refresh):
		if m.user == nil {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadDashboard(m.user.Role))
	case key.Matches(keyMsg, keys.notifications):
		m.screen = screenNotifications
		m.cursor = 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNotifications())
	}
	return m, nil
}

func (m model) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if next, cmd, handled := m.updateShared(keyMsg); handled {
		return next, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenDashboard
		m.errMsg = ""
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.inbox)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadNotifications())
	case key.Matches(keyMsg, keys.enter):
		if len(m.inbox) == 0 || m.inbox[m.cursor].IsRead {
			return m, nil
		}
		id := m.inbox[m.cursor].ID
		m.unread = max(m.unread-1, 0)
		return m, m.cmdMarkRead(id)
	case key.Matches(keyMsg, keys.readAll):
		return m, m.cmdMarkAllRead()
	}
	return m, nil
}

func (m model) enterDashboard(user models.User) (tea.Model, tea.Cmd) {
	m.user = &user
	m.screen = screenDashboard
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadDashboard(user.Role), m.cmdStartPolling())
}

// handleError sends the user back to the login form when the session is
// gone and shows the error in place otherwise.
func (m model) handleError(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	if errors.Is(err, service.ErrNotLoggedIn) {
		m.screen = screenLogin
		m.user, m.freelancer, m.admin, m.inbox = nil, nil, nil, nil
		m.login.errMsg = "Session expired, please log in again"
		return m, tea.Batch(textinput.Blink, m.cmdStopPolling())
	}
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m model) cmdLogin(email, password string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		user, err := auth.Login(ctx, email, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m model) cmdLoadProfile() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		user, err := auth.Profile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m model) cmdLoadDashboard(role models.UserRole) tea.Cmd {
	ctx, dashboard := m.ctx, m.dashboard
	return func() tea.Msg {
		if role == models.RoleAdmin {
			overview, err := dashboard.AdminOverview(ctx, models.JobFilter{})
			if err != nil {
				return dashboardLoadedMsg{err: err}
			}
			return dashboardLoadedMsg{admin: &overview}
		}

		board, err := dashboard.FreelancerDashboard(ctx, models.AvailableJobsQuery{})
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{freelancer: &board}
	}
}

func (m model) cmdLoadNotifications() tea.Cmd {
	ctx, notifications := m.ctx, m.notifications
	return func() tea.Msg {
		items, err := notifications.List(ctx, false)
		return notificationsLoadedMsg{items: items, err: err}
	}
}

func (m model) cmdMarkRead(id int64) tea.Cmd {
	ctx, notifications := m.ctx, m.notifications
	return func() tea.Msg {
		return notificationsChangedMsg{err: notifications.MarkRead(ctx, id)}
	}
}

func (m model) cmdMarkAllRead() tea.Cmd {
	ctx, notifications := m.ctx, m.notifications
	return func() tea.Msg {
		return notificationsChangedMsg{allRead: true, err: notifications.MarkAllRead(ctx)}
	}
}

// The poller delivers counts through Program.Send, so starting and stopping
// it never happens on the update loop.
func (m model) cmdStartPolling() tea.Cmd {
	ctx, poller := m.ctx, m.poller
	return func() tea.Msg {
		poller.Run(ctx)
		return nil
	}
}

func (m model) cmdStopPolling() tea.Cmd {
	poller := m.poller
	return func() tea.Msg {
		poller.Stop()
		return nil
	}
}

func (m model) cmdLogout() tea.Cmd {
	ctx, auth, poller := m.ctx, m.auth, m.poller
	return func() tea.Msg {
		poller.Stop()
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m model) cmdCopyToken() tea.Cmd {
	ctx, tokens, copyText := m.ctx, m.tokens, m.copyText
	return func() tea.Msg {
		token, ok := tokens.GetToken(ctx)
		if !ok {
			return copiedMsg{err: service.ErrNotLoggedIn}
		}
		return copiedMsg{err: copyText(token)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
