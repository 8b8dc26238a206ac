package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/career-compass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asha = models.RegisterRequest{
	Name:     "Asha",
	Email:    "asha@example.com",
	Password: "pw-asha",
	Class:    "10",
	Section:  "B",
}

func TestRegister(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, testRequest{method: http.MethodPost, path: "/api/auth/register", body: asha})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer "+resp.Token, rr.Header().Get("Authorization"))

	require.NotNil(t, resp.User)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
	assert.NotEmpty(t, resp.User.StudentID)
	assert.NotContains(t, rr.Body.String(), "pw-asha")
}

func TestRegister_Rejects(t *testing.T) {
	router := newTestRouter(t)
	register(t, router, asha)

	tests := []struct {
		name       string
		body       any
		raw        string
		wantStatus int
		wantKind   models.ErrorKind
	}{
		{
			name:       "duplicate email ignores case",
			body:       models.RegisterRequest{Name: "Other", Email: "ASHA@example.com", Password: "x"},
			wantStatus: http.StatusConflict,
			wantKind:   models.KindConflict,
		},
		{
			name:       "missing name",
			body:       models.RegisterRequest{Email: "b@example.com", Password: "x"},
			wantStatus: http.StatusBadRequest,
			wantKind:   models.KindValidation,
		},
		{
			name:       "bad email",
			body:       models.RegisterRequest{Name: "B", Email: "not-an-email", Password: "x"},
			wantStatus: http.StatusBadRequest,
			wantKind:   models.KindValidation,
		},
		{
			name:       "unknown role",
			body:       models.RegisterRequest{Name: "B", Email: "b@example.com", Password: "x", Role: "wizard"},
			wantStatus: http.StatusBadRequest,
			wantKind:   models.KindValidation,
		},
		{
			name:       "admin role refused",
			body:       models.RegisterRequest{Name: "Mallory", Email: "mallory@example.com", Password: "x", Role: models.RoleAdmin},
			wantStatus: http.StatusForbidden,
			wantKind:   models.KindForbidden,
		},
		{
			name:       "admin role refused in raw payload",
			raw:        `{"name":"Mallory","email":"mallory2@example.com","password":"x","role":"admin"}`,
			wantStatus: http.StatusForbidden,
			wantKind:   models.KindForbidden,
		},
		{
			name:       "malformed json",
			raw:        `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantKind:   models.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rr *httptest.ResponseRecorder
			if tt.raw != "" {
				rr = doRaw(router, http.MethodPost, "/api/auth/register", tt.raw, "")
			} else {
				rr = do(t, router, testRequest{method: http.MethodPost, path: "/api/auth/register", body: tt.body})
			}

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tt.wantKind, decodeError(t, rr).Kind)
		})
	}
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)
	_, user := register(t, router, asha)

	t.Run("ok", func(t *testing.T) {
		rr := do(t, router, testRequest{
			method: http.MethodPost,
			path:   "/api/auth/login",
			body:   models.LoginRequest{Email: " Asha@Example.com ", Password: "pw-asha"},
		})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	for name, req := range map[string]models.LoginRequest{
		"wrong password": {Email: "asha@example.com", Password: "nope"},
		"unknown email":  {Email: "ghost@example.com", Password: "pw-asha"},
	} {
		t.Run(name, func(t *testing.T) {
			rr := do(t, router, testRequest{method: http.MethodPost, path: "/api/auth/login", body: req})

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, models.KindUnauthenticated, body.Kind)
			assert.Contains(t, body.Message, "invalid email or password")
		})
	}

	t.Run("empty password", func(t *testing.T) {
		rr := do(t, router, testRequest{
			method: http.MethodPost,
			path:   "/api/auth/login",
			body:   models.LoginRequest{Email: "asha@example.com"},
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMeAndLogout(t *testing.T) {
	router := newTestRouter(t)
	token, user := register(t, router, asha)

	rr := do(t, router, testRequest{method: http.MethodGet, path: "/api/auth/me", token: token})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Empty(t, resp.Token)

	rr = do(t, router, testRequest{method: http.MethodPost, path: "/api/auth/logout", token: token})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, router, testRequest{method: http.MethodGet, path: "/api/auth/me"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func doRaw(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, r)
	return rr
}
