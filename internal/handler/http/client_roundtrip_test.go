package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kardash/internal/adapter"
	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/gateway"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/models"
)

// newRoundTrip serves the router over a real listener and returns an adapter
// talking to it through the gateway, plus the gateway's token store.
func newRoundTrip(t *testing.T) (adapter.ServerAdapter, *gateway.MemoryTokenStore) {
	t.Helper()

	srv := httptest.NewServer(newTestHandler(t).Init())
	t.Cleanup(srv.Close)

	tokens := gateway.NewMemoryTokenStore("")
	gw, err := gateway.New(config.ClientAdapter{HTTPAddress: srv.URL}, tokens, logger.Nop())
	require.NoError(t, err)

	return adapter.NewHTTPServerAdapter(gw, logger.Nop()), tokens
}

func requireAPIError(t *testing.T, err error, sentinel error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)

	var apiErr *gateway.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, message, apiErr.Message)
}

func TestRoundTrip_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	api, tokens := newRoundTrip(t)

	_, err := api.Me(ctx)
	requireAPIError(t, err, gateway.ErrUnauthorized, "Not authenticated")

	_, err = api.Login(ctx, models.UserLogin{Email: mockdata.FreelancerEmail, Password: "wrong"})
	requireAPIError(t, err, gateway.ErrUnauthorized, "Incorrect email or password")

	token, err := api.Login(ctx, models.UserLogin{Email: mockdata.FreelancerEmail, Password: mockdata.FreelancerPassword})
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)

	// an explicit token works before anything is stored
	me, err := api.MeWithToken(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, mockdata.FreelancerEmail, me.Email)

	tokens.SetToken(token.AccessToken)
	me, err = api.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleFreelancer, me.Role)

	_, err = api.ListUsers(ctx)
	requireAPIError(t, err, gateway.ErrForbidden, "Not enough permissions")

	tokens.ClearToken()
	_, err = api.MyJobs(ctx)
	requireAPIError(t, err, gateway.ErrUnauthorized, "Not authenticated")
}

func TestRoundTrip_ExplicitTokenWinsOverStored(t *testing.T) {
	ctx := context.Background()
	api, tokens := newRoundTrip(t)
	tokens.SetToken(freelancerToken(t))

	me, err := api.MeWithToken(ctx, adminToken(t))

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, me.Role)
}

func TestRoundTrip_NoContentIsNil(t *testing.T) {
	ctx := context.Background()
	api, tokens := newRoundTrip(t)
	tokens.SetToken(freelancerToken(t))

	count, err := api.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.NoError(t, api.MarkNotificationRead(ctx, 1))

	count, err = api.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = api.MarkNotificationRead(ctx, 404)
	requireAPIError(t, err, gateway.ErrNotFound, "Notification not found")

	require.NoError(t, api.MarkAllNotificationsRead(ctx))
	count, err = api.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRoundTrip_ErrorDetails(t *testing.T) {
	ctx := context.Background()
	api, tokens := newRoundTrip(t)
	tokens.SetToken(freelancerToken(t))

	_, err := api.GetJob(ctx, 99)
	requireAPIError(t, err, gateway.ErrNotFound, "Job not found")

	_, err = api.ApplyForJob(ctx, 4, models.JobApplicationCreate{Proposal: "me", BidAmount: 10})
	requireAPIError(t, err, gateway.ErrBadRequest, "Job is not open for applications")

	_, err = api.DeliverJob(ctx, 4, models.JobDelivery{Notes: "done", FilesURL: "nope"})
	requireAPIError(t, err, gateway.ErrUnprocessable, "files_url: invalid or missing URL scheme")
}

func TestRoundTrip_JobFlow(t *testing.T) {
	ctx := context.Background()
	api, tokens := newRoundTrip(t)

	open, err := api.AvailableJobs(ctx, models.AvailableJobsQuery{SortBy: "budget-low"})
	require.NoError(t, err)
	require.Len(t, open, 3)
	assert.Equal(t, int64(2), open[0].ID)

	tokens.SetToken(freelancerToken(t))
	msg, err := api.DeliverJob(ctx, 4, models.JobDelivery{Notes: "done", FilesURL: "https://files.example.com/ui.zip"})
	require.NoError(t, err)
	assert.Equal(t, "Job delivered successfully", msg.Message)

	tokens.SetToken(adminToken(t))
	job, err := api.CompleteJob(ctx, 4, models.JobCompletion{Feedback: "Great", Rating: 4.5})
	require.NoError(t, err)
	assert.Equal(t, models.JobCompleted, job.Status)

	require.NoError(t, api.DeleteJob(ctx, 4))
	_, err = api.GetJob(ctx, 4)
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	chart, err := api.EarningsChart(ctx, models.PeriodWeekly)
	require.NoError(t, err)
	assert.Len(t, chart.Labels, 4)
}
