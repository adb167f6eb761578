package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRow(id int64, email string) *sqlmock.Rows {
	trialExpiry := testNow.AddDate(0, 0, 14)
	return sqlmock.NewRows(userColumns).AddRow(
		id, email, "$2a$hash", "Ada", "Lovelace",
		false, true, "trial",
		testNow, trialExpiry, nil,
		testNow, nil,
	)
}

func accessCodeRow(code string, maxUses any, currentUses int) *sqlmock.Rows {
	return sqlmock.NewRows(accessCodeColumns).AddRow(
		int64(7), code, "partner promo", 30, "days", maxUses,
		currentUses, true, nil, testNow, nil,
	)
}
