package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/models"
)

func TestSessionRepository_CreateSession(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	session := models.Session{
		TokenHash: "hash",
		UserID:    4,
		ExpiresAt: testNow.Add(24 * time.Hour),
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8",
		CreatedAt: testNow,
	}

	mock.ExpectQuery("INSERT INTO sessions \\(token_hash,user_id,expires_at,ip_address,user_agent,created_at\\)").
		WithArgs("hash", int64(4), session.ExpiresAt, "10.0.0.1", "curl/8", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(40)))

	created, err := repo.CreateSession(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, int64(40), created.ID)
	assert.Equal(t, "hash", created.TokenHash)
}

func TestSessionRepository_FindSessionByTokenHash(t *testing.T) {
	t.Run("live session", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT .+ FROM sessions WHERE token_hash = \\$1 AND expires_at > \\$2").
			WithArgs("hash", testNow).
			WillReturnRows(sqlmock.NewRows(sessionColumns).
				AddRow(int64(40), "hash", int64(4), testNow.Add(time.Hour), "10.0.0.1", "curl/8", testNow))

		session, err := repo.FindSessionByTokenHash(context.Background(), "hash", testNow)
		require.NoError(t, err)
		assert.Equal(t, int64(4), session.UserID)
	})

	t.Run("expired or unknown", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSessionRepository(db, logger.Nop())

		mock.ExpectQuery("SELECT .+ FROM sessions").
			WillReturnRows(sqlmock.NewRows(sessionColumns))

		_, err := repo.FindSessionByTokenHash(context.Background(), "hash", testNow)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestSessionRepository_DeleteSession_MissingIsNotAnError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM sessions WHERE token_hash = \\$1").
		WithArgs("hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteSession(context.Background(), "hash"))
}

func TestSessionRepository_DeleteUserSessions(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM sessions WHERE user_id = \\$1").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteUserSessions(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSessionRepository_DeleteExpiredSessions(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSessionRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM sessions WHERE expires_at <= \\$1").
		WithArgs(testNow).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.DeleteExpiredSessions(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
