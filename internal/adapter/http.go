// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/models"
)

type httpServerAdapter struct {
	gw     gateway.Requester
	logger *logger.Logger
}

// NewHTTPServerAdapter returns a [ServerAdapter] issuing its calls through gw.
func NewHTTPServerAdapter(gw gateway.Requester, logger *logger.Logger) ServerAdapter {
	return &httpServerAdapter{gw: gw, logger: logger}
}

// Login implements [ServerAdapter]. It POSTs creds to /auth/login without a
// bearer token, even when a session is stored, and returns the issued
// [models.Token]. Storing the token is left to the caller.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.UserLogin) (models.Token, error) {
	opts, err := jsonOptions(http.MethodPost, creds)
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}
	opts.Anonymous = true

	return object[models.Token](ctx, h.gw, "login", "/auth/login", opts)
}

// Register implements [ServerAdapter]. It POSTs the new account to
// /auth/register without a bearer token and returns the created user.
func (h *httpServerAdapter) Register(ctx context.Context, user models.UserCreate) (models.User, error) {
	opts, err := jsonOptions(http.MethodPost, user)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	opts.Anonymous = true

	return object[models.User](ctx, h.gw, "register", "/auth/register", opts)
}

// Me implements [ServerAdapter]. It GETs /users/me with the stored token.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	return object[models.User](ctx, h.gw, "get profile", "/users/me", gateway.Options{})
}

// MeWithToken implements [ServerAdapter]. It GETs /users/me authenticated
// with token instead of the stored one. Login uses it to verify a fresh
// token before saving it.
func (h *httpServerAdapter) MeWithToken(ctx context.Context, token string) (models.User, error) {
	return object[models.User](ctx, h.gw, "get profile", "/users/me", gateway.Options{Token: token})
}

// UpdateMe implements [ServerAdapter]. It PUTs update to /users/me; nil
// fields are omitted from the body and stay unchanged on the server.
func (h *httpServerAdapter) UpdateMe(ctx context.Context, update models.UserUpdate) (models.User, error) {
	opts, err := jsonOptions(http.MethodPut, update)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	return object[models.User](ctx, h.gw, "update profile", "/users/me", opts)
}

// ListUsers implements [ServerAdapter]. It GETs /users/.
func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, h.gw, "list users", "/users/", gateway.Options{})
}

// UserStats implements [ServerAdapter]. It GETs /users/stats/overview.
func (h *httpServerAdapter) UserStats(ctx context.Context) (models.UserStats, error) {
	return object[models.UserStats](ctx, h.gw, "user stats", "/users/stats/overview", gateway.Options{})
}

// ActivateUser implements [ServerAdapter]. It POSTs an empty body to
// /users/{id}/activate and returns the server's acknowledgement.
func (h *httpServerAdapter) ActivateUser(ctx context.Context, userID int64) (models.Message, error) {
	return object[models.Message](ctx, h.gw, "activate user", userPath(userID, "/activate"), gateway.Options{Method: http.MethodPost})
}

// DeactivateUser implements [ServerAdapter]. It POSTs an empty body to
// /users/{id}/deactivate. The server refuses to deactivate the caller's own
// account with 400.
func (h *httpServerAdapter) DeactivateUser(ctx context.Context, userID int64) (models.Message, error) {
	return object[models.Message](ctx, h.gw, "deactivate user", userPath(userID, "/deactivate"), gateway.Options{Method: http.MethodPost})
}

// ListJobs implements [ServerAdapter]. It GETs /jobs/ with the non-empty
// fields of filter as query parameters.
func (h *httpServerAdapter) ListJobs(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	query := url.Values{}
	setIfNotEmpty(query, "search", filter.Search)
	setIfNotEmpty(query, "status", string(filter.Status))
	setIfNotEmpty(query, "platform", filter.Platform)

	return list[models.Job](ctx, h.gw, "list jobs", withQuery("/jobs/", query), gateway.Options{})
}

// AvailableJobs implements [ServerAdapter]. It GETs /jobs/available with the
// non-empty fields of q as query parameters.
func (h *httpServerAdapter) AvailableJobs(ctx context.Context, q models.AvailableJobsQuery) ([]models.Job, error) {
	query := url.Values{}
	setIfNotEmpty(query, "search", q.Search)
	setIfNotEmpty(query, "sort_by", q.SortBy)
	setIfNotEmpty(query, "filter_type", q.FilterType)

	return list[models.Job](ctx, h.gw, "available jobs", withQuery("/jobs/available", query), gateway.Options{})
}

// MyJobs implements [ServerAdapter]. It GETs /jobs/my.
func (h *httpServerAdapter) MyJobs(ctx context.Context) ([]models.Job, error) {
	return list[models.Job](ctx, h.gw, "my jobs", "/jobs/my", gateway.Options{})
}

// GetJob implements [ServerAdapter]. It GETs /jobs/{id}.
func (h *httpServerAdapter) GetJob(ctx context.Context, jobID int64) (models.Job, error) {
	return object[models.Job](ctx, h.gw, "get job", jobPath(jobID, ""), gateway.Options{})
}

// CreateJob implements [ServerAdapter]. It POSTs job to /jobs/ and returns
// the stored job with its server-assigned ID and status.
func (h *httpServerAdapter) CreateJob(ctx context.Context, job models.JobCreate) (models.Job, error) {
	opts, err := jsonOptions(http.MethodPost, job)
	if err != nil {
		return models.Job{}, fmt.Errorf("create job: %w", err)
	}

	return object[models.Job](ctx, h.gw, "create job", "/jobs/", opts)
}

// UpdateJob implements [ServerAdapter]. It PUTs update to /jobs/{id}; nil
// fields are omitted and stay unchanged. Returns the job as stored after
// the edit.
func (h *httpServerAdapter) UpdateJob(ctx context.Context, jobID int64, update models.JobUpdate) (models.Job, error) {
	opts, err := jsonOptions(http.MethodPut, update)
	if err != nil {
		return models.Job{}, fmt.Errorf("update job: %w", err)
	}

	return object[models.Job](ctx, h.gw, "update job", jobPath(jobID, ""), opts)
}

// DeleteJob implements [ServerAdapter]. It sends DELETE /jobs/{id} and
// ignores the acknowledgement body.
func (h *httpServerAdapter) DeleteJob(ctx context.Context, jobID int64) error {
	return discard(ctx, h.gw, "delete job", jobPath(jobID, ""), gateway.Options{Method: http.MethodDelete})
}

// ApplyForJob implements [ServerAdapter]. It POSTs application to
// /jobs/{id}/apply.
func (h *httpServerAdapter) ApplyForJob(ctx context.Context, jobID int64, application models.JobApplicationCreate) (models.JobApplication, error) {
	opts, err := jsonOptions(http.MethodPost, application)
	if err != nil {
		return models.JobApplication{}, fmt.Errorf("apply for job: %w", err)
	}

	return object[models.JobApplication](ctx, h.gw, "apply for job", jobPath(jobID, "/apply"), opts)
}

// DeliverJob implements [ServerAdapter]. It POSTs delivery to
// /jobs/{id}/deliver.
func (h *httpServerAdapter) DeliverJob(ctx context.Context, jobID int64, delivery models.JobDelivery) (models.Message, error) {
	opts, err := jsonOptions(http.MethodPost, delivery)
	if err != nil {
		return models.Message{}, fmt.Errorf("deliver job: %w", err)
	}

	return object[models.Message](ctx, h.gw, "deliver job", jobPath(jobID, "/deliver"), opts)
}

// CompleteJob implements [ServerAdapter]. It POSTs completion to
// /jobs/{id}/complete and returns the completed job.
func (h *httpServerAdapter) CompleteJob(ctx context.Context, jobID int64, completion models.JobCompletion) (models.Job, error) {
	opts, err := jsonOptions(http.MethodPost, completion)
	if err != nil {
		return models.Job{}, fmt.Errorf("complete job: %w", err)
	}

	return object[models.Job](ctx, h.gw, "complete job", jobPath(jobID, "/complete"), opts)
}

// DashboardOverview implements [ServerAdapter]. It GETs /dashboard/overview.
func (h *httpServerAdapter) DashboardOverview(ctx context.Context) (models.DashboardOverview, error) {
	return object[models.DashboardOverview](ctx, h.gw, "dashboard overview", "/dashboard/overview", gateway.Options{})
}

// FreelancerStats implements [ServerAdapter]. It GETs
// /dashboard/freelancer/stats.
func (h *httpServerAdapter) FreelancerStats(ctx context.Context) (models.FreelancerStats, error) {
	return object[models.FreelancerStats](ctx, h.gw, "freelancer stats", "/dashboard/freelancer/stats", gateway.Options{})
}

// EarningsOverview implements [ServerAdapter]. It GETs
// /dashboard/earnings/overview.
func (h *httpServerAdapter) EarningsOverview(ctx context.Context) (models.EarningsOverview, error) {
	return object[models.EarningsOverview](ctx, h.gw, "earnings overview", "/dashboard/earnings/overview", gateway.Options{})
}

// EarningsChart implements [ServerAdapter]. It GETs
// /dashboard/earnings/chart, sending period as a query parameter when it is
// not empty.
func (h *httpServerAdapter) EarningsChart(ctx context.Context, period string) (models.EarningsChart, error) {
	query := url.Values{}
	setIfNotEmpty(query, "period", period)

	return object[models.EarningsChart](ctx, h.gw, "earnings chart", withQuery("/dashboard/earnings/chart", query), gateway.Options{})
}

// BotAccounts implements [ServerAdapter]. It GETs /bot-accounts/.
func (h *httpServerAdapter) BotAccounts(ctx context.Context) ([]models.BotAccount, error) {
	return list[models.BotAccount](ctx, h.gw, "list bot accounts", "/bot-accounts/", gateway.Options{})
}

// CreateBotAccount implements [ServerAdapter]. It POSTs account to
// /bot-accounts/ and returns the stored bot account.
func (h *httpServerAdapter) CreateBotAccount(ctx context.Context, account models.BotAccountCreate) (models.BotAccount, error) {
	opts, err := jsonOptions(http.MethodPost, account)
	if err != nil {
		return models.BotAccount{}, fmt.Errorf("create bot account: %w", err)
	}

	return object[models.BotAccount](ctx, h.gw, "create bot account", "/bot-accounts/", opts)
}

// ActivateBotAccount implements [ServerAdapter]. It POSTs an empty body to
// /bot-accounts/{id}/activate.
func (h *httpServerAdapter) ActivateBotAccount(ctx context.Context, botID int64) (models.Message, error) {
	return object[models.Message](ctx, h.gw, "activate bot account", botPath(botID, "/activate"), gateway.Options{Method: http.MethodPost})
}

// PauseBotAccount implements [ServerAdapter]. It POSTs an empty body to
// /bot-accounts/{id}/pause.
func (h *httpServerAdapter) PauseBotAccount(ctx context.Context, botID int64) (models.Message, error) {
	return object[models.Message](ctx, h.gw, "pause bot account", botPath(botID, "/pause"), gateway.Options{Method: http.MethodPost})
}

// BotAccountStats implements [ServerAdapter]. It GETs
// /bot-accounts/stats/overview.
func (h *httpServerAdapter) BotAccountStats(ctx context.Context) (models.BotAccountStats, error) {
	return object[models.BotAccountStats](ctx, h.gw, "bot account stats", "/bot-accounts/stats/overview", gateway.Options{})
}

// Notifications implements [ServerAdapter]. It GETs /notifications/, adding
// unread_only=true when unreadOnly is set.
func (h *httpServerAdapter) Notifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	query := url.Values{}
	if unreadOnly {
		query.Set("unread_only", "true")
	}

	return list[models.Notification](ctx, h.gw, "list notifications", withQuery("/notifications/", query), gateway.Options{})
}

// UnreadCount implements [ServerAdapter]. It GETs
// /notifications/unread-count and unwraps the count.
func (h *httpServerAdapter) UnreadCount(ctx context.Context) (int, error) {
	count, err := object[models.UnreadCount](ctx, h.gw, "unread count", "/notifications/unread-count", gateway.Options{})
	if err != nil {
		return 0, err
	}
	return count.UnreadCount, nil
}

// MarkNotificationRead implements [ServerAdapter]. It POSTs an empty body to
// /notifications/{id}/mark-read.
func (h *httpServerAdapter) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	endpoint := "/notifications/" + strconv.FormatInt(notificationID, 10) + "/mark-read"
	return discard(ctx, h.gw, "mark notification read", endpoint, gateway.Options{Method: http.MethodPost})
}

// MarkAllNotificationsRead implements [ServerAdapter]. It POSTs an empty
// body to /notifications/mark-all-read.
func (h *httpServerAdapter) MarkAllNotificationsRead(ctx context.Context) error {
	return discard(ctx, h.gw, "mark all notifications read", "/notifications/mark-all-read", gateway.Options{Method: http.MethodPost})
}
