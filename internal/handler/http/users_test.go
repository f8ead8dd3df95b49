package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/models"
)

func TestMe(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodGet, "/users/me", adminToken(t), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeRecorder[models.User](t, rec)
	assert.Equal(t, mockdata.AdminEmail, me.Email)
	assert.Equal(t, models.RoleAdmin, me.Role)
}

func TestUpdateMe_IgnoresRoleChange(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := serve(t, router, http.MethodPut, "/users/me", freelancerToken(t),
		`{"name": "Ahmad M.", "hourly_rate": 40, "role": "admin", "status": "banned"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me := decodeRecorder[models.User](t, rec)
	assert.Equal(t, "Ahmad M.", me.Name)
	assert.InDelta(t, 40, me.HourlyRate, 1e-9)
	assert.Equal(t, models.RoleFreelancer, me.Role)
	assert.True(t, me.IsActive)
}

func TestUpdateMe_NegativeRate(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodPut, "/users/me", freelancerToken(t), `{"hourly_rate": -1}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListUsersAndStats(t *testing.T) {
	router := newTestHandler(t).Init()
	token := adminToken(t)

	rec := serve(t, router, http.MethodGet, "/users/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRecorder[[]models.User](t, rec), 4)

	rec = serve(t, router, http.MethodGet, "/users/stats/overview", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.UserStats{
		TotalUsers:  4,
		ActiveUsers: 3,
		Freelancers: 3,
		Admins:      1,
	}, decodeRecorder[models.UserStats](t, rec))
}

func TestActivateAndDeactivateUser(t *testing.T) {
	router := newTestHandler(t).Init()
	token := adminToken(t)

	rec := serve(t, router, http.MethodPost, "/users/2/deactivate", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "User deactivated successfully", decodeRecorder[models.Message](t, rec).Message)

	// the deactivated freelancer's token stops working
	rec = serve(t, router, http.MethodGet, "/users/me", freelancerToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Inactive user", detailOf(t, rec))

	rec = serve(t, router, http.MethodPost, "/users/2/activate", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User activated successfully", decodeRecorder[models.Message](t, rec).Message)

	rec = serve(t, router, http.MethodGet, "/users/me", freelancerToken(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeactivateUser_Errors(t *testing.T) {
	router := newTestHandler(t).Init()

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantDetail string
	}{
		{name: "self", path: "/users/1/deactivate", token: adminToken(t), wantStatus: http.StatusBadRequest, wantDetail: "Cannot deactivate yourself"},
		{name: "unknown user", path: "/users/99/deactivate", token: adminToken(t), wantStatus: http.StatusNotFound, wantDetail: "User not found"},
		{name: "not admin", path: "/users/3/deactivate", token: freelancerToken(t), wantStatus: http.StatusForbidden, wantDetail: "Not enough permissions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, http.MethodPost, tt.path, tt.token, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, rec))
		})
	}

	rec := serve(t, router, http.MethodPost, "/users/abc/activate", adminToken(t), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
