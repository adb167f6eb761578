package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
)

func newAPIGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPGateway(config.Mail{
		APIURL:     srv.URL + "/v1/",
		APIKey:     "mail-key",
		APITimeout: time.Second,
		From:       "noreply@leave-desk.test",
	}, logger.Nop())
}

func TestHTTPGateway_SendPasswordReset(t *testing.T) {
	var got apiMessage
	g := newAPIGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	})

	err := g.SendPasswordReset(context.Background(), PasswordResetEmail{
		To:        "ada@example.com",
		FirstName: "Ada",
		Link:      "https://app.test/reset-password?token=xyz",
		ExpiresAt: time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "noreply@leave-desk.test", got.From)
	assert.Equal(t, "ada@example.com", got.To)
	assert.Equal(t, passwordResetSubject, got.Subject)
	assert.Equal(t, KindPasswordReset, got.Tag)
	assert.Contains(t, got.HTML, "https://app.test/reset-password?token=xyz")
}

func TestHTTPGateway_SendVerification(t *testing.T) {
	var got apiMessage
	g := newAPIGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := g.SendVerification(context.Background(), VerificationEmail{
		To:          "ada@example.com",
		FirstName:   "Ada",
		Link:        "https://app.test/verify?token=abc123",
		TrialExpiry: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, KindVerification, got.Tag)
	assert.Contains(t, got.HTML, "https://app.test/verify?token=abc123")
}

func TestHTTPGateway_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"rejected", http.StatusUnprocessableEntity, ErrMailAPIRejected},
		{"unauthorized", http.StatusUnauthorized, ErrMailAPIRejected},
		{"unavailable", http.StatusBadGateway, ErrMailAPIUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newAPIGateway(t, func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			})

			err := g.SendVerification(context.Background(), VerificationEmail{To: "ada@example.com", Link: "https://app.test/verify?token=a"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPGateway_EmptyRecipient(t *testing.T) {
	g := newAPIGateway(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request expected")
	})

	err := g.SendPasswordReset(context.Background(), PasswordResetEmail{Link: "https://app.test/reset-password?token=a"})

	assert.ErrorIs(t, err, ErrEmptyRecipient)
}
