package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/models"
)

func TestPasswordResetRepository_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	reset := models.PasswordReset{
		Email:     "Ada@example.com",
		TokenHash: "reset-hash",
		ExpiresAt: testNow.Add(time.Hour),
		CreatedAt: testNow,
	}

	mock.ExpectExec("INSERT INTO password_resets .+ ON CONFLICT \\(email\\) DO UPDATE SET").
		WithArgs("ada@example.com", "reset-hash", reset.ExpiresAt, nil, testNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.UpsertPasswordReset(context.Background(), reset))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_FindByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM password_resets WHERE email = \\$1").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(passwordResetColumns).
			AddRow(int64(1), "ada@example.com", "reset-hash", testNow.Add(time.Hour), nil, testNow))

	reset, err := repo.FindPasswordResetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Nil(t, reset.UsedAt)
	assert.True(t, reset.IsUsable(testNow))
}

func TestPasswordResetRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM password_resets").
		WillReturnRows(sqlmock.NewRows(passwordResetColumns))

	_, err := repo.FindPasswordResetByEmail(context.Background(), "ada@example.com")
	assert.ErrorIs(t, err, ErrPasswordResetNotFound)
}

// ── ConsumePasswordReset ─────────────────────────────────────────────────────

func TestPasswordResetRepository_Consume_RevokesSessions(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE password_resets SET used_at = \\$1 WHERE token_hash = \\$2 AND used_at IS NULL AND expires_at > \\$3 RETURNING email").
		WithArgs(testNow, "reset-hash", testNow).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("ada@example.com"))
	mock.ExpectQuery("UPDATE users SET password_hash = \\$1 WHERE email = \\$2 RETURNING user_id").
		WithArgs("$2a$new", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(8)))
	mock.ExpectExec("DELETE FROM sessions WHERE user_id = \\$1").
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	userID, err := repo.ConsumePasswordReset(context.Background(), "reset-hash", "$2a$new", testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(8), userID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_Consume_AlreadyUsed(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE password_resets").
		WillReturnRows(sqlmock.NewRows([]string{"email"}))
	mock.ExpectRollback()

	_, err := repo.ConsumePasswordReset(context.Background(), "reset-hash", "$2a$new", testNow)
	assert.ErrorIs(t, err, ErrPasswordResetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_Consume_AccountGone(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE password_resets").
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("gone@example.com"))
	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectRollback()

	_, err := repo.ConsumePasswordReset(context.Background(), "reset-hash", "$2a$new", testNow)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_Consume_CommitFails(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE password_resets").
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("ada@example.com"))
	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(8)))
	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	_, err := repo.ConsumePasswordReset(context.Background(), "reset-hash", "$2a$new", testNow)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestPasswordResetRepository_DeleteExpired(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPasswordResetRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM password_resets WHERE \\(expires_at <= \\$1 OR used_at IS NOT NULL\\)").
		WithArgs(testNow).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteExpiredPasswordResets(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
