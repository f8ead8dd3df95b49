package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	method string
	path   string
}

var publicRoutes = []routeCase{
	{http.MethodGet, "/health"},
	{http.MethodGet, "/jobs/available"},
	{http.MethodGet, "/jobs/1"},
}

var signedInRoutes = []routeCase{
	{http.MethodGet, "/users/me"},
	{http.MethodPut, "/users/me"},
	{http.MethodGet, "/jobs/my"},
	{http.MethodPost, "/jobs/1/apply"},
	{http.MethodPost, "/jobs/1/deliver"},
	{http.MethodGet, "/dashboard/freelancer/stats"},
	{http.MethodGet, "/notifications/"},
	{http.MethodGet, "/notifications/unread-count"},
	{http.MethodPost, "/notifications/1/mark-read"},
	{http.MethodPost, "/notifications/mark-all-read"},
}

var adminRoutes = []routeCase{
	{http.MethodGet, "/users/"},
	{http.MethodGet, "/users/stats/overview"},
	{http.MethodGet, "/jobs/"},
	{http.MethodPost, "/jobs/"},
	{http.MethodDelete, "/jobs/1"},
	{http.MethodPost, "/jobs/1/complete"},
	{http.MethodGet, "/dashboard/overview"},
	{http.MethodGet, "/dashboard/earnings/overview"},
	{http.MethodGet, "/dashboard/earnings/chart"},
	{http.MethodGet, "/bot-accounts/"},
	{http.MethodPost, "/bot-accounts/"},
}

func TestInit_ReturnsRouter(t *testing.T) {
	require.NotNil(t, newTestHandler(t).Init())
}

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	for _, tc := range publicRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestHandler(t).Init()

	for _, tc := range append(append([]routeCase{}, signedInRoutes...), adminRoutes...) {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, "Not authenticated", detailOf(t, rec))
		})
	}
}

func TestInit_AdminRoutes_RejectFreelancer(t *testing.T) {
	router := newTestHandler(t).Init()
	token := freelancerToken(t)

	for _, tc := range adminRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, token, nil)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "Not enough permissions", detailOf(t, rec))
		})
	}
}

func TestInit_AdminRoutes_ReachableByAdmin(t *testing.T) {
	router := newTestHandler(t).Init()
	token := adminToken(t)

	for _, tc := range adminRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, token, nil)

			// bodiless POSTs fail validation, which still proves the route
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
			assert.NotEqual(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestInit_FreelancerStats_RejectsAdmin(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodGet, "/dashboard/freelancer/stats", adminToken(t), nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied", detailOf(t, rec))
}

func TestInit_UnknownRoute_ReturnsDetail404(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodGet, "/nonexistent", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", detailOf(t, rec))
}

func TestInit_WrongMethod_ReturnsDetail405(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodPatch, "/health", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", detailOf(t, rec))
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := serve(t, router, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = serve(t, router, http.MethodGet, "/nonexistent", "", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_InvalidPathID_Returns422(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodGet, "/jobs/abc", "", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeRecorder[validationBody](t, rec)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, []string{"path", "job_id"}, body.Detail[0].Loc)
	assert.Equal(t, "type_error.integer", body.Detail[0].Type)
}
