// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed KARDASH API used by the client
// services.
//
// The primary abstraction is [ServerAdapter]. Each of its methods is exactly
// one request issued through the gateway, so authentication, header merging
// and error normalization behave the same for every endpoint. Errors are the
// gateway's, wrapped with the operation name: [errors.As] with
// *gateway.APIError and [errors.Is] with the gateway status sentinels keep
// working on them.
package adapter

import (
	"context"

	"github.com/MKhiriev/kardash/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the KARDASH backend.
type ServerAdapter interface {
	// Login exchanges credentials for an access token. The request is sent
	// without any stored token.
	Login(ctx context.Context, creds models.UserLogin) (models.Token, error)

	// Register creates a new account. The request is sent without any
	// stored token.
	Register(ctx context.Context, user models.UserCreate) (models.User, error)

	// Me returns the profile of the session's user.
	Me(ctx context.Context) (models.User, error)

	// MeWithToken returns the profile of the user owning token, regardless
	// of the stored session.
	MeWithToken(ctx context.Context, token string) (models.User, error)

	// UpdateMe applies a partial update to the session user's profile.
	UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error)

	// ListUsers returns all accounts (admin only).
	ListUsers(ctx context.Context) ([]models.User, error)

	// UserStats returns the admin user summary.
	UserStats(ctx context.Context) (models.UserStats, error)

	// ActivateUser re-enables a deactivated account (admin only).
	ActivateUser(ctx context.Context, userID int64) (models.Message, error)

	// DeactivateUser disables an account so it can no longer sign in
	// (admin only).
	DeactivateUser(ctx context.Context, userID int64) (models.Message, error)

	// ListJobs returns all jobs matching filter (admin only).
	ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error)

	// AvailableJobs returns open jobs for freelancers.
	AvailableJobs(ctx context.Context, query models.AvailableJobsQuery) ([]models.Job, error)

	// MyJobs returns the jobs of the session user.
	MyJobs(ctx context.Context) ([]models.Job, error)

	// GetJob returns one job.
	GetJob(ctx context.Context, jobID int64) (models.Job, error)

	// CreateJob publishes a new job (admin only).
	CreateJob(ctx context.Context, job models.JobCreate) (models.Job, error)

	// UpdateJob edits a job; nil fields of update are left unchanged
	// (admin only).
	UpdateJob(ctx context.Context, jobID int64, update models.JobUpdate) (models.Job, error)

	// DeleteJob removes a job (admin only).
	DeleteJob(ctx context.Context, jobID int64) error

	// ApplyForJob sends the session user's application for a job.
	ApplyForJob(ctx context.Context, jobID int64, application models.JobApplicationCreate) (models.JobApplication, error)

	// DeliverJob hands in an in-progress job.
	DeliverJob(ctx context.Context, jobID int64, delivery models.JobDelivery) (models.Message, error)

	// CompleteJob closes a delivered job (admin only).
	CompleteJob(ctx context.Context, jobID int64, completion models.JobCompletion) (models.Job, error)

	// DashboardOverview returns the admin panel headline.
	DashboardOverview(ctx context.Context) (models.DashboardOverview, error)

	// FreelancerStats returns the freelancer dashboard headline.
	FreelancerStats(ctx context.Context) (models.FreelancerStats, error)

	// EarningsOverview returns the earnings summary.
	EarningsOverview(ctx context.Context) (models.EarningsOverview, error)

	// EarningsChart returns the earnings series for period
	// ("daily", "weekly" or "monthly").
	EarningsChart(ctx context.Context, period string) (models.EarningsChart, error)

	// BotAccounts returns all bot accounts.
	BotAccounts(ctx context.Context) ([]models.BotAccount, error)

	// CreateBotAccount registers a bot account.
	CreateBotAccount(ctx context.Context, account models.BotAccountCreate) (models.BotAccount, error)

	// ActivateBotAccount resumes a paused bot account.
	ActivateBotAccount(ctx context.Context, botID int64) (models.Message, error)

	// PauseBotAccount stops a bot account from applying.
	PauseBotAccount(ctx context.Context, botID int64) (models.Message, error)

	// BotAccountStats returns the admin summary of all bot accounts.
	BotAccountStats(ctx context.Context) (models.BotAccountStats, error)

	// Notifications returns the session user's notifications.
	Notifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error)

	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context) (int, error)

	// MarkNotificationRead marks one notification as read.
	MarkNotificationRead(ctx context.Context, notificationID int64) error

	// MarkAllNotificationsRead marks every notification as read.
	MarkAllNotificationsRead(ctx context.Context) error
}
