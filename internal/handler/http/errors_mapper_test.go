package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/career-compass/internal/service"
	"github.com/MKhiriev/career-compass/internal/store"
	"github.com/MKhiriev/career-compass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   models.ErrorKind
	}{
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest, models.KindInvalidInput},
		{"validation", service.ErrNoAssessmentInput, http.StatusBadRequest, models.KindValidation},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, models.KindUnauthenticated},
		{"missing header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized, models.KindUnauthenticated},
		{"admin only", service.ErrAdminOnly, http.StatusForbidden, models.KindForbidden},
		{"not found", store.ErrCareerNotFound, http.StatusNotFound, models.KindNotFound},
		{"conflict", fmt.Errorf("create: %w", store.ErrEmailAlreadyExists), http.StatusConflict, models.KindConflict},
		{"persistence", models.ErrPersistence, http.StatusInternalServerError, models.KindPersistence},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, models.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, kind := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestWriteError_MasksServerErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"internal", errors.New("dial tcp 10.0.0.1:5432: refused"), "internal server error"},
		{"persistence", fmt.Errorf("%w: pq: relation users", models.ErrPersistence), "storage operation failed"},
		{"client error kept", service.ErrAdminOnly, service.ErrAdminOnly.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
		})
	}
}

func TestWriteData(t *testing.T) {
	rr := httptest.NewRecorder()
	writeData(rr, []string{"a"}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":["a"]}`, rr.Body.String())
}
