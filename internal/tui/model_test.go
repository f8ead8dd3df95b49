package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/service"
	"github.com/MKhiriev/kardash/models"
)

// ── fakes ───────────────────────────────────────────────────────────────────

type fakeAuth struct {
	loginUser  models.User
	loginErr   error
	profile    models.User
	profileErr error

	logins  []string
	logouts int
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (models.User, error) {
	f.logins = append(f.logins, email)
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Register(context.Context, models.UserCreate) (models.User, error) {
	return models.User{}, errors.New("not used")
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return nil
}

func (f *fakeAuth) Session(context.Context) (models.Session, error) {
	return models.Session{}, nil
}

func (f *fakeAuth) Profile(context.Context) (models.User, error) {
	return f.profile, f.profileErr
}

func (f *fakeAuth) UpdateProfile(context.Context, models.UserUpdate) (models.User, error) {
	return models.User{}, errors.New("not used")
}

type fakeDashboard struct {
	freelancer models.FreelancerDashboard
	admin      models.AdminOverview
	err        error
}

func (f *fakeDashboard) FreelancerDashboard(context.Context, models.AvailableJobsQuery) (models.FreelancerDashboard, error) {
	return f.freelancer, f.err
}

func (f *fakeDashboard) AdminOverview(context.Context, models.JobFilter) (models.AdminOverview, error) {
	return f.admin, f.err
}

func (f *fakeDashboard) Earnings(context.Context, string) (models.EarningsReport, error) {
	return models.EarningsReport{}, errors.New("not used")
}

func (f *fakeDashboard) UserStats(context.Context) (models.UserStats, error) {
	return models.UserStats{}, errors.New("not used")
}

func (f *fakeDashboard) CreateBotAccount(context.Context, models.BotAccountCreate) (models.BotAccount, error) {
	return models.BotAccount{}, errors.New("not used")
}

func (f *fakeDashboard) ActivateUser(context.Context, int64) (models.Message, error) {
	return models.Message{}, errors.New("not used")
}

func (f *fakeDashboard) DeactivateUser(context.Context, int64) (models.Message, error) {
	return models.Message{}, errors.New("not used")
}

func (f *fakeDashboard) ActivateBotAccount(context.Context, int64) (models.Message, error) {
	return models.Message{}, errors.New("not used")
}

func (f *fakeDashboard) PauseBotAccount(context.Context, int64) (models.Message, error) {
	return models.Message{}, errors.New("not used")
}

func (f *fakeDashboard) BotAccountStats(context.Context) (models.BotAccountStats, error) {
	return models.BotAccountStats{}, errors.New("not used")
}

type fakeNotifications struct {
	items   []models.Notification
	read    []int64
	allRead bool
}

func (f *fakeNotifications) List(context.Context, bool) ([]models.Notification, error) {
	return f.items, nil
}

func (f *fakeNotifications) UnreadCount(context.Context) (int, error) {
	return 0, nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, id int64) error {
	f.read = append(f.read, id)
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotifications) MarkAllRead(context.Context) error {
	f.allRead = true
	for i := range f.items {
		f.items[i].IsRead = true
	}
	return nil
}

type fakePoller struct {
	runs, stops int
}

func (p *fakePoller) Run(context.Context) { p.runs++ }
func (p *fakePoller) Stop()               { p.stops++ }

// ── helpers ─────────────────────────────────────────────────────────────────

type testDeps struct {
	auth          *fakeAuth
	dashboard     *fakeDashboard
	notifications *fakeNotifications
	poller        *fakePoller
	copied        []string
}

var (
	freelancerUser = models.User{ID: 2, Name: "Ahmad Mohammadi", Role: models.RoleFreelancer, IsActive: true}
	adminUser      = models.User{ID: 1, Name: "KARDASH Admin", Role: models.RoleAdmin, IsActive: true}
)

func newTestModel(t *testing.T, start screen, token string) (model, *testDeps) {
	t.Helper()

	d := &testDeps{
		auth: &fakeAuth{loginUser: freelancerUser, profile: freelancerUser},
		dashboard: &fakeDashboard{
			freelancer: models.FreelancerDashboard{
				Stats:         models.FreelancerStats{TotalJobs: 2, ActiveJobs: 1},
				AvailableJobs: []models.Job{{ID: 1, Title: "React.js Developer", Budget: "1200", Status: models.JobOpen, IsUrgent: true}},
				MyJobs:        []models.Job{{ID: 4, Title: "Mobile App UI/UX Design", Budget: "900", Status: models.JobInProgress}},
			},
			admin: models.AdminOverview{
				Overview:    models.DashboardOverview{TotalJobs: 5, ActiveJobs: 3, TotalUsers: 4},
				BotAccounts: []models.BotAccount{{ID: 1, Name: "TechBot_01", Platform: "Upwork", Status: "active"}},
				Users:       []models.User{adminUser, freelancerUser},
			},
		},
		notifications: &fakeNotifications{items: []models.Notification{
			{ID: 1, Type: "job_accepted", Message: "Application accepted"},
			{ID: 2, Type: "payment", Message: "Payment processed"},
			{ID: 3, Type: "deadline", Message: "Deadline is tomorrow", IsRead: true},
		}},
		poller: &fakePoller{},
	}

	m := newModel(context.Background(), modelDeps{
		auth:          d.auth,
		dashboard:     d.dashboard,
		notifications: d.notifications,
		tokens:        gateway.StaticToken(token),
		poller:        d.poller,
		copyText: func(s string) error {
			d.copied = append(d.copied, s)
			return nil
		},
	}, start)
	return m, d
}

// drive feeds msg to m, then every model message its commands produce.
// Animation ticks, blinks and timers are dropped.
func drive(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()

	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next, cmd := m.Update(queue[0])
		queue = queue[1:]

		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
		queue = append(queue, collect(cmd)...)
	}
	return m
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case loginResultMsg, profileLoadedMsg, dashboardLoadedMsg, notificationsLoadedMsg,
		notificationsChangedMsg, loggedOutMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ── login ───────────────────────────────────────────────────────────────────

func TestModel_LoginRequiresCredentials(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	m.login.inputs[0].SetValue("freelancer@kardash.com")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Email and password are required", m.login.errMsg)
	assert.Empty(t, d.auth.logins)
}

func TestModel_LoginSuccessLoadsFreelancerDashboard(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	m.login.inputs[0].SetValue("  freelancer@kardash.com ")
	m.login.inputs[1].SetValue("freelancer")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"freelancer@kardash.com"}, d.auth.logins)
	assert.Equal(t, screenDashboard, m.screen)
	assert.False(t, m.loading)
	assert.Equal(t, 1, d.poller.runs)
	require.NotNil(t, m.freelancer)
	assert.Nil(t, m.admin)
	assert.Empty(t, m.login.inputs[1].Value(), "password is cleared after login")

	view := m.View()
	assert.Contains(t, view, "Ahmad Mohammadi (freelancer)")
	assert.Contains(t, view, "React.js Developer")
	assert.Contains(t, view, "Mobile App UI/UX Design")
	assert.Contains(t, view, "URGENT")
}

func TestModel_LoginFailureShowsBackendMessage(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	d.auth.loginErr = fmt.Errorf("%w: %w", service.ErrInvalidCredentials,
		&gateway.APIError{StatusCode: http.StatusUnauthorized, Message: "Incorrect email or password"})
	m.login.inputs[0].SetValue("freelancer@kardash.com")
	m.login.inputs[1].SetValue("wrong")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, m.login.submitting)
	assert.Equal(t, "Incorrect email or password", m.login.errMsg)
	assert.Contains(t, m.View(), "Incorrect email or password")
	assert.Zero(t, d.poller.runs)
}

func TestModel_LoginTabMovesFocus(t *testing.T) {
	m, _ := newTestModel(t, screenLogin, "")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.login.focus)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.login.focus)
}

// ── dashboard ───────────────────────────────────────────────────────────────

func TestModel_StoredSessionOpensAdminOverview(t *testing.T) {
	m, d := newTestModel(t, screenDashboard, "stored")
	d.auth.profile = adminUser

	for _, msg := range collect(m.Init()) {
		m = drive(t, m, msg)
	}

	assert.Equal(t, screenDashboard, m.screen)
	require.NotNil(t, m.admin)
	assert.Nil(t, m.freelancer)
	assert.Equal(t, 1, d.poller.runs)

	view := m.View()
	assert.Contains(t, view, "KARDASH Admin (admin)")
	assert.Contains(t, view, "Bot accounts")
	assert.Contains(t, view, "TechBot_01")
	assert.Contains(t, view, "Users: 2 registered, 2 active")
}

func TestModel_ExpiredSessionReturnsToLogin(t *testing.T) {
	m, d := newTestModel(t, screenDashboard, "stale")
	d.auth.profileErr = fmt.Errorf("%w: %w", service.ErrNotLoggedIn,
		&gateway.APIError{StatusCode: http.StatusUnauthorized, Message: "Could not validate credentials"})

	for _, msg := range collect(m.Init()) {
		m = drive(t, m, msg)
	}

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Session expired, please log in again", m.login.errMsg)
	assert.Zero(t, d.poller.runs)
}

func TestModel_DashboardErrorStaysOnScreen(t *testing.T) {
	m, d := newTestModel(t, screenDashboard, "tok")
	d.dashboard.err = &gateway.APIError{StatusCode: http.StatusForbidden, Message: "Access denied"}

	for _, msg := range collect(m.Init()) {
		m = drive(t, m, msg)
	}

	assert.Equal(t, screenDashboard, m.screen)
	assert.Equal(t, "Access denied", m.errMsg)
	assert.Contains(t, m.View(), "Error: Access denied")
}

func TestModel_RefreshReloadsDashboard(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	m = drive(t, m, loginResultMsg{user: freelancerUser})
	require.Len(t, m.freelancer.AvailableJobs, 1)

	d.dashboard.freelancer.AvailableJobs = append(d.dashboard.freelancer.AvailableJobs,
		models.Job{ID: 6, Title: "Landing page", Budget: "300", Status: models.JobOpen})
	m = drive(t, m, keyRunes("r"))

	assert.Len(t, m.freelancer.AvailableJobs, 2)
	assert.Contains(t, m.View(), "Landing page")
}

func TestModel_UnreadBadge(t *testing.T) {
	m, _ := newTestModel(t, screenLogin, "")
	m = drive(t, m, loginResultMsg{user: freelancerUser})
	assert.NotContains(t, m.View(), "unread")

	m = drive(t, m, unreadCountMsg{count: 3})

	assert.Equal(t, 3, m.unread)
	assert.Contains(t, m.View(), "3 unread")
}

// ── notifications ───────────────────────────────────────────────────────────

func TestModel_NotificationsMarkRead(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	m = drive(t, m, loginResultMsg{user: freelancerUser})
	m = drive(t, m, unreadCountMsg{count: 2})

	m = drive(t, m, keyRunes("n"))
	require.Equal(t, screenNotifications, m.screen)
	require.Len(t, m.inbox, 3)
	assert.Contains(t, m.View(), "Payment processed")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []int64{2}, d.notifications.read)
	assert.Equal(t, 1, m.unread)
	assert.True(t, m.inbox[1].IsRead)

	// already read: nothing is sent
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int64{2}, d.notifications.read)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenDashboard, m.screen)
}

func TestModel_NotificationsMarkAllRead(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	m = drive(t, m, loginResultMsg{user: freelancerUser})
	m = drive(t, m, unreadCountMsg{count: 2})
	m = drive(t, m, keyRunes("n"))

	m = drive(t, m, keyRunes("a"))

	assert.True(t, d.notifications.allRead)
	assert.Zero(t, m.unread)
	for _, n := range m.inbox {
		assert.True(t, n.IsRead)
	}
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m, _ := newTestModel(t, screenLogin, "")
	m = drive(t, m, loginResultMsg{user: freelancerUser})
	m = drive(t, m, keyRunes("n"))

	for range 5 {
		m = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, m.cursor)

	for range 5 {
		m = drive(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.cursor)
}

// ── session actions ─────────────────────────────────────────────────────────

func TestModel_CopyToken(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "session-token")
	m = drive(t, m, loginResultMsg{user: freelancerUser})

	next, cmd := m.Update(keyRunes("c"))
	m = next.(model)
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, copiedMsg{}, msg)
	next, _ = m.Update(msg)
	m = next.(model)

	assert.Equal(t, []string{"session-token"}, d.copied)
	assert.Equal(t, "Session token copied to clipboard", m.status)

	next, _ = m.Update(clearStatusMsg{})
	assert.Empty(t, next.(model).status)
}

func TestModel_CopyTokenWithoutSession(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	m = drive(t, m, loginResultMsg{user: freelancerUser})

	_, cmd := m.Update(keyRunes("c"))
	next, _ := m.Update(cmd())
	m = next.(model)

	assert.Empty(t, d.copied)
	assert.Empty(t, m.status)
	assert.Equal(t, service.ErrNotLoggedIn.Error(), m.errMsg)
}

func TestModel_Logout(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	m = drive(t, m, loginResultMsg{user: freelancerUser})
	m = drive(t, m, unreadCountMsg{count: 2})

	m = drive(t, m, keyRunes("l"))

	assert.Equal(t, 1, d.auth.logouts)
	assert.Equal(t, 1, d.poller.stops)
	assert.Equal(t, screenLogin, m.screen)
	assert.Nil(t, m.user)
	assert.Nil(t, m.freelancer)
	assert.Zero(t, m.unread)
}

func TestModel_Quit(t *testing.T) {
	t.Run("q quits from the dashboard", func(t *testing.T) {
		m, _ := newTestModel(t, screenLogin, "")
		m = drive(t, m, loginResultMsg{user: freelancerUser})

		next, cmd := m.Update(keyRunes("q"))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(model).quitByUser)
	})

	t.Run("q is typed on the login form", func(t *testing.T) {
		m, _ := newTestModel(t, screenLogin, "")

		next, _ := m.Update(keyRunes("q"))
		m = next.(model)

		assert.False(t, m.quitByUser)
		assert.Equal(t, "q", m.login.inputs[0].Value())
	})

	t.Run("ctrl+c quits anywhere", func(t *testing.T) {
		m, _ := newTestModel(t, screenLogin, "")

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, next.(model).quitByUser)
	})
}

func TestModel_SpinnerStopsWhenIdle(t *testing.T) {
	m, _ := newTestModel(t, screenLogin, "")

	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestModel_ViewFitsLongTitles(t *testing.T) {
	m, d := newTestModel(t, screenLogin, "")
	d.dashboard.freelancer.AvailableJobs = []models.Job{{ID: 9, Title: strings.Repeat("x", 80), Budget: "10", Status: models.JobOpen}}
	m = drive(t, m, loginResultMsg{user: freelancerUser})

	view := m.View()
	assert.Contains(t, view, strings.Repeat("x", 37)+"...")
	assert.NotContains(t, view, strings.Repeat("x", 41))
}
