package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

func TestLogin_Success(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := serve(t, router, http.MethodPost, "/auth/login", "", models.UserLogin{
		Email: mockdata.FreelancerEmail, Password: mockdata.FreelancerPassword,
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decodeRecorder[models.Token](t, rec)
	assert.Equal(t, "bearer", token.TokenType)

	claims, userID, err := utils.ValidateAndParseJWTToken(token.AccessToken, testAuth.TokenSignKey, testAuth.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, seedFreelancerID, userID)
	assert.Equal(t, models.RoleFreelancer, claims.Role)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodPost, "/auth/login", "", models.UserLogin{
		Email: "ADMIN@kardash.com", Password: mockdata.AdminPassword,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		creds      models.UserLogin
		wantStatus int
		wantDetail string
	}{
		{
			name:       "wrong password",
			creds:      models.UserLogin{Email: mockdata.AdminEmail, Password: "nope"},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Incorrect email or password",
		},
		{
			name:       "unknown email",
			creds:      models.UserLogin{Email: "ghost@kardash.com", Password: "whatever"},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Incorrect email or password",
		},
		{
			name:       "seeded user without password",
			creds:      models.UserLogin{Email: "maryam@example.com", Password: "anything"},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Incorrect email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestHandler(t).Init(), http.MethodPost, "/auth/login", "", tt.creds)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, rec))
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodPost, "/auth/login", "", "{not json")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeRecorder[validationBody](t, rec)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, []string{"body"}, body.Detail[0].Loc)
}

func TestLogin_ValidationIssuesUseJSONNames(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodPost, "/auth/login", "", `{"email": "not-an-email"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeRecorder[validationBody](t, rec)
	require.Len(t, body.Detail, 2)

	fields := []string{body.Detail[0].Loc[1], body.Detail[1].Loc[1]}
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
	for _, issue := range body.Detail {
		assert.NotEmpty(t, issue.Msg)
		assert.Equal(t, "body", issue.Loc[0])
	}
}

func TestRegister_Success(t *testing.T) {
	router := newTestHandler(t).Init()

	rec := serve(t, router, http.MethodPost, "/auth/register", "", models.UserCreate{
		Email: "new@kardash.com", Name: "New Person", Password: "secret1",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decodeRecorder[models.User](t, rec)
	assert.Equal(t, "new@kardash.com", user.Email)
	assert.Equal(t, models.RoleFreelancer, user.Role)
	assert.True(t, user.IsActive)
	assert.NotContains(t, rec.Body.String(), "secret1")

	// the new account can log in right away
	rec = serve(t, router, http.MethodPost, "/auth/login", "", models.UserLogin{Email: "new@kardash.com", Password: "secret1"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	rec := serve(t, newTestHandler(t).Init(), http.MethodPost, "/auth/register", "", models.UserCreate{
		Email: mockdata.AdminEmail, Name: "Copycat", Password: "secret1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", detailOf(t, rec))
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      models.UserCreate
		wantField string
	}{
		{name: "short password", body: models.UserCreate{Email: "a@b.co", Name: "A", Password: "123"}, wantField: "password"},
		{name: "bad role", body: models.UserCreate{Email: "a@b.co", Name: "A", Password: "123456", Role: "root"}, wantField: "role"},
		{name: "missing name", body: models.UserCreate{Email: "a@b.co", Password: "123456"}, wantField: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newTestHandler(t).Init(), http.MethodPost, "/auth/register", "", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			body := decodeRecorder[validationBody](t, rec)
			require.Len(t, body.Detail, 1)
			assert.Equal(t, []string{"body", tt.wantField}, body.Detail[0].Loc)
		})
	}
}
