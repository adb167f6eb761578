package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── requireAuth ──────────────────────────────────────────────────────────────

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(*http.Request)
		setup      func(*testServer)
		wantStatus int
	}{
		{
			name:       "no credentials",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Token abc") },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "unknown session",
			prepare: func(r *http.Request) { bearer(r, "stale") },
			setup: func(ts *testServer) {
				ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "stale").Return(models.User{}, service.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "bearer session",
			prepare: func(r *http.Request) { bearer(r, "sess-tok") },
			setup: func(ts *testServer) {
				ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(futureUser(false), nil)
				ts.auth.EXPECT().HasAccess(gomock.Any()).Return(true)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cookie session on safe method needs no csrf",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-tok"})
			},
			setup: func(ts *testServer) {
				ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(futureUser(false), nil)
				ts.auth.EXPECT().HasAccess(gomock.Any()).Return(false)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.setup != nil {
				tt.setup(ts)
			}

			req := jsonRequest(http.MethodGet, "/api/user/me", "")
			tt.prepare(req)
			rr := ts.do(t, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCurrentUser_Body(t *testing.T) {
	ts := newTestServer(t)
	user := futureUser(false)
	ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(user, nil)
	ts.auth.EXPECT().HasAccess(gomock.Any()).Return(true)

	rr := ts.do(t, bearer(jsonRequest(http.MethodGet, "/api/user/me", ""), "sess-tok"))
	require.Equal(t, http.StatusOK, rr.Code)

	var body models.CurrentUserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, user.Email, body.User.Email)
	assert.True(t, body.HasAccess)
	assert.Equal(t, models.AccessLevelTrial, body.EffectiveAccessLevel)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestCSRF_CookieAuthenticatedUnsafeRequests(t *testing.T) {
	newReq := func(csrf string) *http.Request {
		req := jsonRequest(http.MethodPost, "/api/admin/access-codes", `{"code":"SPRING","duration":30,"duration_type":"days"}`)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-tok"})
		if csrf != "" {
			req.Header.Set(csrfHeader, csrf)
		}
		return req
	}

	t.Run("missing header", func(t *testing.T) {
		ts := newTestServer(t)
		ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(futureUser(true), nil)
		ts.auth.EXPECT().ValidateCSRFToken(gomock.Any(), "sess-tok", "").Return(service.ErrForbidden)

		assert.Equal(t, http.StatusForbidden, ts.do(t, newReq("")).Code)
	})

	t.Run("valid header", func(t *testing.T) {
		ts := newTestServer(t)
		ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(futureUser(true), nil)
		ts.auth.EXPECT().ValidateCSRFToken(gomock.Any(), "sess-tok", "csrf-ok").Return(nil)
		ts.admin.EXPECT().CreateAccessCode(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.AccessCode) (models.AccessCode, error) {
				require.NotNil(t, c.CreatedBy)
				assert.Equal(t, int64(7), *c.CreatedBy)
				return c, nil
			},
		)

		assert.Equal(t, http.StatusCreated, ts.do(t, newReq("csrf-ok")).Code)
	})
}

func TestCSRFTokenRoute(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(futureUser(false), nil)
	ts.auth.EXPECT().IssueCSRFToken(gomock.Any(), "sess-tok").Return("csrf-tok", nil)

	rr := ts.do(t, bearer(jsonRequest(http.MethodGet, "/api/auth/csrf", ""), "sess-tok"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"csrf_token":"csrf-tok"}`, rr.Body.String())
}

// ── requireAccess ────────────────────────────────────────────────────────────

func TestRequireAccess(t *testing.T) {
	t.Run("expired user", func(t *testing.T) {
		ts := newTestServer(t)
		past := time.Now().Add(-time.Hour)
		ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(models.User{UserID: 3, TrialExpiry: &past}, nil)
		ts.auth.EXPECT().HasAccess(gomock.Any()).Return(false)

		rr := ts.do(t, bearer(jsonRequest(http.MethodGet, "/api/access/status", ""), "sess-tok"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("trial user", func(t *testing.T) {
		ts := newTestServer(t)
		user := futureUser(false)
		ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(user, nil)
		ts.auth.EXPECT().HasAccess(gomock.Any()).Return(true).Times(2)

		rr := ts.do(t, bearer(jsonRequest(http.MethodGet, "/api/access/status", ""), "sess-tok"))
		require.Equal(t, http.StatusOK, rr.Code)

		var body models.AccessStatusResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.HasAccess)
		assert.Equal(t, models.AccessLevelTrial, body.AccessLevel)
		require.NotNil(t, body.ExpiresAt)
		assert.True(t, body.ExpiresAt.Equal(*user.TrialExpiry))
	})
}

// ── requireAdmin ─────────────────────────────────────────────────────────────

func TestRequireAdmin(t *testing.T) {
	t.Run("regular user is forbidden", func(t *testing.T) {
		ts := newTestServer(t)
		ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(futureUser(false), nil)

		rr := ts.do(t, bearer(jsonRequest(http.MethodGet, "/api/admin/access-codes", ""), "sess-tok"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin lists codes", func(t *testing.T) {
		ts := newTestServer(t)
		ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "sess-tok").Return(futureUser(true), nil)
		ts.admin.EXPECT().ListAccessCodes(gomock.Any()).Return(nil, nil)

		rr := ts.do(t, bearer(jsonRequest(http.MethodGet, "/api/admin/access-codes", ""), "sess-tok"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
	})
}
