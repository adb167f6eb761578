package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/service"
	"github.com/MKhiriev/go-leave-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func adminServer(t *testing.T) *testServer {
	t.Helper()
	ts := newTestServer(t)
	ts.auth.EXPECT().GetCurrentUser(gomock.Any(), "admin-tok").Return(futureUser(true), nil).AnyTimes()
	return ts
}

func TestCreateAccessCode_Conflict(t *testing.T) {
	ts := adminServer(t)
	ts.admin.EXPECT().CreateAccessCode(gomock.Any(), gomock.Any()).Return(models.AccessCode{}, service.ErrAccessCodeExists)

	rr := ts.do(t, bearer(jsonRequest(http.MethodPost, "/api/admin/access-codes", `{"code":"SPRING","duration":1,"duration_type":"months"}`), "admin-tok"))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestDeactivateAccessCode(t *testing.T) {
	ts := adminServer(t)
	ts.admin.EXPECT().DeactivateAccessCode(gomock.Any(), "SPRING").Return(nil)
	ts.admin.EXPECT().DeactivateAccessCode(gomock.Any(), "GONE").Return(service.ErrAccessCodeNotFound)

	rr := ts.do(t, bearer(jsonRequest(http.MethodPost, "/api/admin/access-codes/SPRING/deactivate", ""), "admin-tok"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.do(t, bearer(jsonRequest(http.MethodPost, "/api/admin/access-codes/GONE/deactivate", ""), "admin-tok"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSetSubscription(t *testing.T) {
	ts := adminServer(t)
	ts.admin.EXPECT().SetSubscriptionExpiry(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, expiry *time.Time) (models.User, error) {
			require.NotNil(t, expiry)
			assert.True(t, expiry.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)))
			return models.User{UserID: 42, SubscriptionExpiry: expiry, AccessLevel: models.AccessLevelSubscribed}, nil
		},
	)

	rr := ts.do(t, bearer(jsonRequest(http.MethodPut, "/api/admin/users/42/subscription", `{"expires_at":"2027-01-01T00:00:00Z"}`), "admin-tok"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"subscribed"`, jsonField(t, rr.Body.Bytes(), "access_level"))
}

func TestSetSubscription_Clear(t *testing.T) {
	ts := adminServer(t)
	ts.admin.EXPECT().SetSubscriptionExpiry(gomock.Any(), int64(42), gomock.Nil()).
		Return(models.User{UserID: 42, AccessLevel: models.AccessLevelExpired}, nil)

	rr := ts.do(t, bearer(jsonRequest(http.MethodPut, "/api/admin/users/42/subscription", `{"expires_at":null}`), "admin-tok"))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSetSubscription_BadInput(t *testing.T) {
	ts := adminServer(t)
	ts.admin.EXPECT().SetSubscriptionExpiry(gomock.Any(), int64(404), gomock.Any()).Return(models.User{}, service.ErrUserNotFound)

	rr := ts.do(t, bearer(jsonRequest(http.MethodPut, "/api/admin/users/abc/subscription", `{}`), "admin-tok"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.do(t, bearer(jsonRequest(http.MethodPut, "/api/admin/users/404/subscription", `{}`), "admin-tok"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
