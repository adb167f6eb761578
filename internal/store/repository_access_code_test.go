package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/models"
)

func TestAccessCodeRepository_CreateAccessCode(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessCodeRepository(db, logger.Nop())

	maxUses := 10
	code := models.AccessCode{
		Code:         "partner30",
		Description:  "partner promo",
		Duration:     30,
		DurationType: models.DurationTypeDays,
		MaxUses:      &maxUses,
		IsActive:     true,
		CreatedAt:    testNow,
	}

	mock.ExpectQuery("INSERT INTO access_codes").
		WithArgs("PARTNER30", "partner promo", 30, models.DurationTypeDays, &maxUses,
			0, true, nil, testNow, nil).
		WillReturnRows(accessCodeRow("PARTNER30", 10, 0))

	created, err := repo.CreateAccessCode(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, "PARTNER30", created.Code)
	assert.Equal(t, 0, created.CurrentUses)
	require.NotNil(t, created.MaxUses)
	assert.Equal(t, 10, *created.MaxUses)
}

func TestAccessCodeRepository_CreateAccessCode_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessCodeRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO access_codes").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAccessCode(context.Background(), models.AccessCode{Code: "DUP"})
	assert.ErrorIs(t, err, ErrAccessCodeAlreadyExists)
}

func TestAccessCodeRepository_FindAccessCode(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessCodeRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM access_codes WHERE code = \\$1").
		WithArgs("PARTNER30").
		WillReturnRows(accessCodeRow("PARTNER30", nil, 3))

	code, err := repo.FindAccessCode(context.Background(), " partner30 ")
	require.NoError(t, err)
	assert.Nil(t, code.MaxUses)
	assert.Equal(t, 3, code.CurrentUses)
}

func TestAccessCodeRepository_FindAccessCode_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessCodeRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .+ FROM access_codes").
		WillReturnRows(sqlmock.NewRows(accessCodeColumns))

	_, err := repo.FindAccessCode(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrAccessCodeNotFound)
}

func TestAccessCodeRepository_ListAccessCodes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessCodeRepository(db, logger.Nop())

	rows := sqlmock.NewRows(accessCodeColumns).
		AddRow(int64(2), "B", "", 1, "months", nil, 0, true, int64(1), testNow, nil).
		AddRow(int64(1), "A", "", 7, "days", 5, 5, false, nil, testNow, testNow)
	mock.ExpectQuery("SELECT .+ FROM access_codes ORDER BY created_at DESC, id DESC").
		WillReturnRows(rows)

	codes, err := repo.ListAccessCodes(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, models.DurationTypeMonths, codes[0].DurationType)
	require.NotNil(t, codes[0].CreatedBy)
	assert.False(t, codes[1].IsActive)
	require.NotNil(t, codes[1].ExpiresAt)
}

func TestAccessCodeRepository_ListAccessCodes_RowError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccessCodeRepository(db, logger.Nop())

	rows := sqlmock.NewRows(accessCodeColumns).
		AddRow(int64(1), "A", "", 7, "days", nil, 0, true, nil, testNow, nil).
		RowError(0, errors.New("network blip"))
	mock.ExpectQuery("SELECT .+ FROM access_codes").WillReturnRows(rows)

	_, err := repo.ListAccessCodes(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestAccessCodeRepository_DeactivateAccessCode(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deactivated", affected: 1},
		{name: "unknown code", affected: 0, wantErr: ErrAccessCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewAccessCodeRepository(db, logger.Nop())

			mock.ExpectExec("UPDATE access_codes SET is_active = \\$1 WHERE code = \\$2").
				WithArgs(false, "PARTNER30").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeactivateAccessCode(context.Background(), "partner30")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
