package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/app"
	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/mock"
	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	router  http.Handler
	auth    *mock.MockAuthService
	admin   *mock.MockAdminService
	appInfo *mock.MockAppInfoService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		auth:    mock.NewMockAuthService(ctrl),
		admin:   mock.NewMockAdminService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    ts.auth,
		AdminService:   ts.admin,
		AppInfoService: ts.appInfo,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "leave_desk_test_total"}))

	h := NewHandler(services, config.Server{RequestTimeout: 5 * time.Second, SecureCookies: true}, registry, logger.Nop())
	ts.router = h.Init()
	return ts
}

func (ts *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(method, path, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func futureUser(admin bool) models.User {
	trial := time.Now().Add(time.Hour).UTC()
	return models.User{UserID: 7, Email: "jane@example.com", IsAdmin: admin, EmailVerified: true, TrialExpiry: &trial}
}

// ── Version and metrics ──────────────────────────────────────────────────────

func TestVersionRoute(t *testing.T) {
	ts := newTestServer(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestMetricsRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "leave_desk_test_total")
}

func TestMetricsRoute_DisabledWithoutGatherer(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, nil, logger.Nop())

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownMethodOnKnownPath(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrValidation, http.StatusBadRequest},
		{service.ErrInvalidAccessCode, http.StatusBadRequest},
		{service.ErrInvalidOrExpiredToken, http.StatusBadRequest},
		{service.ErrDuplicateEmail, http.StatusConflict},
		{service.ErrPendingVerificationExists, http.StatusConflict},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrEmailNotVerified, http.StatusForbidden},
		{service.ErrRateLimited, http.StatusTooManyRequests},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrStoreFailure, http.StatusInternalServerError},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStoreFailureIsHidden(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.Registration{}, service.ErrStoreFailure)

	rr := ts.do(t, jsonRequest(http.MethodPost, "/api/auth/register", `{"email":"jane@example.com"}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError, errorBody(t, rr))
}
