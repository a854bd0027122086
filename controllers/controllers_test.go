package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/auth0-gateway/models"
	"github.com/blogem/auth0-gateway/repositories/mocks"
	"github.com/blogem/auth0-gateway/services"
	"github.com/blogem/auth0-gateway/userctx"
)

// MockManagementService is a mock implementation of services.ManagementService
type MockManagementService struct {
	mock.Mock
}

func (m *MockManagementService) Handle(ctx context.Context, action string, parameters json.RawMessage) *services.Result {
	args := m.Called(ctx, action, parameters)
	return args.Get(0).(*services.Result)
}

func (m *MockManagementService) Actions() []models.ActionInfo {
	args := m.Called()
	return args.Get(0).([]models.ActionInfo)
}

func newTestControllers(mgmt services.ManagementService, audit services.AuditService) *Controllers {
	return NewControllers(&services.Services{Management: mgmt, Audit: audit}, nil)
}

func TestDispatch_PassesEnvelopeToService(t *testing.T) {
	mgmt := new(MockManagementService)
	mgmt.On("Handle", mock.Anything, "get_user", json.RawMessage(`{"user_id":"auth0|1"}`)).Return(&services.Result{
		StatusCode: http.StatusOK,
		Body:       json.RawMessage(`{"user_id":"auth0|1"}`),
		Method:     "GET",
		Path:       "/api/v2/users/auth0%7C1",
		Duration:   15 * time.Millisecond,
	})
	ctrl := newTestControllers(mgmt, services.NewAuditService(nil))

	req := httptest.NewRequest(http.MethodPost, "/auth0-management", strings.NewReader(`{"action":"get_user","parameters":{"user_id":"auth0|1"}}`))
	entry := &models.AuditLogEntry{}
	req = req.WithContext(userctx.SetAuditEntry(req.Context(), entry))
	rec := httptest.NewRecorder()

	ctrl.Management.Dispatch(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"user_id":"auth0|1"}`, rec.Body.String())

	assert.Equal(t, "get_user", entry.Action)
	assert.Equal(t, "GET", entry.Method)
	assert.Equal(t, "/api/v2/users/auth0%7C1", entry.Path)
	assert.Equal(t, int64(15), entry.DurationMS)
	mgmt.AssertExpectations(t)
}

func TestDispatch_WritesErrorEnvelope(t *testing.T) {
	mgmt := new(MockManagementService)
	mgmt.On("Handle", mock.Anything, "get_user", mock.Anything).Return(&services.Result{
		StatusCode: http.StatusBadRequest,
		Body:       models.ErrorResponse{Error: "missing parameter: user_id"},
	})
	ctrl := newTestControllers(mgmt, services.NewAuditService(nil))

	rec := httptest.NewRecorder()
	ctrl.Management.Dispatch(rec, httptest.NewRequest(http.MethodPost, "/auth0-management", strings.NewReader(`{"action":"get_user"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing parameter: user_id"}`, rec.Body.String())
}

func TestDispatch_InvalidBody(t *testing.T) {
	mgmt := new(MockManagementService)
	ctrl := newTestControllers(mgmt, services.NewAuditService(nil))

	for _, body := range []string{``, `not json`, `[1,2,3]`, `{"action":42}`} {
		rec := httptest.NewRecorder()
		ctrl.Management.Dispatch(rec, httptest.NewRequest(http.MethodPost, "/auth0-management", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String())
	}
	mgmt.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything, mock.Anything)
}

func TestActions(t *testing.T) {
	mgmt := new(MockManagementService)
	mgmt.On("Actions").Return([]models.ActionInfo{
		{Name: "get_user", Method: models.MethodGet, Path: "/api/v2/users/{user_id}", Parameters: []string{"user_id"}},
	})
	ctrl := newTestControllers(mgmt, services.NewAuditService(nil))

	rec := httptest.NewRecorder()
	ctrl.Management.Actions(rec, httptest.NewRequest(http.MethodGet, "/actions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"get_user","method":"GET","path":"/api/v2/users/{user_id}","parameters":["user_id"]}]`, rec.Body.String())
}

func TestAuditIndex_Disabled(t *testing.T) {
	ctrl := newTestControllers(new(MockManagementService), services.NewAuditService(nil))

	rec := httptest.NewRecorder()
	ctrl.Audit.Index(rec, httptest.NewRequest(http.MethodGet, "/audit", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"audit log is disabled"}`, rec.Body.String())
}

func TestAuditIndex_ListsEntries(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	ts := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	repo.EXPECT().Recent(10).Return([]models.AuditLogEntry{
		{ID: 2, Timestamp: ts, Caller: "agent-7", Action: "delete_user", Method: "DELETE", Path: "/api/v2/users/x", StatusCode: 200},
	}, nil)
	ctrl := newTestControllers(new(MockManagementService), services.NewAuditService(repo))

	rec := httptest.NewRecorder()
	ctrl.Audit.Index(rec, httptest.NewRequest(http.MethodGet, "/audit?limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.AuditLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "delete_user", entries[0].Action)
	assert.Equal(t, "agent-7", entries[0].Caller)
}

func TestAuditIndex_DefaultLimitAndErrors(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	repo.EXPECT().Recent(50).Return(nil, errors.New("database is locked"))
	ctrl := newTestControllers(new(MockManagementService), services.NewAuditService(repo))

	rec := httptest.NewRecorder()
	ctrl.Audit.Index(rec, httptest.NewRequest(http.MethodGet, "/audit", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database is locked")

	rec = httptest.NewRecorder()
	ctrl.Audit.Index(rec, httptest.NewRequest(http.MethodGet, "/audit?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
