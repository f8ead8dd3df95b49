package service

import (
	"context"

	"github.com/MKhiriev/kardash/models"
)

// ClientAuthService defines the client-side contract for authentication and
// for the persisted session. The gateway only reads the stored token; this
// service is the one that writes and clears it.
type ClientAuthService interface {
	// Login exchanges email and password for an access token, fetches the
	// profile with that token and stores both in the session.
	// Returns ErrInvalidCredentials when the backend rejects the credentials.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Register creates a new account. It does not log in.
	Register(ctx context.Context, user models.UserCreate) (models.User, error)

	// Logout forgets the stored token and profile. Logging out without a
	// session is not an error.
	Logout(ctx context.Context) error

	// Session describes the stored session without calling the backend.
	// An expired token is reported as expired, never removed.
	Session(ctx context.Context) (models.Session, error)

	// Profile fetches the current profile from the backend and refreshes the
	// cached copy.
	Profile(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial update to the current profile. The
	// role and account status cannot be changed this way.
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// ClientDashboardService assembles the dashboard and admin screens. Each
// screen issues its calls concurrently and fails on the first error.
type ClientDashboardService interface {
	FreelancerDashboard(ctx context.Context, query models.AvailableJobsQuery) (models.FreelancerDashboard, error)
	AdminOverview(ctx context.Context, filter models.JobFilter) (models.AdminOverview, error)

	// Earnings returns the earnings summary and the chart for period. An
	// empty period means monthly.
	Earnings(ctx context.Context, period string) (models.EarningsReport, error)

	UserStats(ctx context.Context) (models.UserStats, error)
	ActivateUser(ctx context.Context, userID int64) (models.Message, error)
	DeactivateUser(ctx context.Context, userID int64) (models.Message, error)

	CreateBotAccount(ctx context.Context, account models.BotAccountCreate) (models.BotAccount, error)
	ActivateBotAccount(ctx context.Context, botID int64) (models.Message, error)
	PauseBotAccount(ctx context.Context, botID int64) (models.Message, error)
	BotAccountStats(ctx context.Context) (models.BotAccountStats, error)
}

// ClientJobService drives the job lifecycle. Request bodies are validated
// before they are sent.
type ClientJobService interface {
	Get(ctx context.Context, jobID int64) (models.Job, error)
	Apply(ctx context.Context, jobID int64, proposal string, bidAmount float64) (models.JobApplication, error)
	Deliver(ctx context.Context, jobID int64, notes, filesURL string) (models.Message, error)
	Complete(ctx context.Context, jobID int64, feedback string, rating float64) (models.Job, error)
	Create(ctx context.Context, job models.JobCreate) (models.Job, error)

	// Update edits a job. An update with no fields set is rejected without
	// a request.
	Update(ctx context.Context, jobID int64, update models.JobUpdate) (models.Job, error)
	Delete(ctx context.Context, jobID int64) error
}

// ClientNotificationService reads and acknowledges notifications.
type ClientNotificationService interface {
	List(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, notificationID int64) error
	MarkAllRead(ctx context.Context) error
}
