// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/migrations"
)

// maxTxRetries bounds how often a transaction classified as [Retryable] is
// re-run from scratch.
const maxTxRetries = 3

// DB wraps a *sql.DB with the dialect-specific pieces every repository
// needs: a squirrel statement builder with the right placeholder format and
// an [ErrorClassificator] for driver errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB assembles a DB for an already opened connection.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect returns config.DriverPostgres or config.DriverSQLite.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func (db *DB) IsUniqueViolation(err error) bool {
	return db.errorClassificator.IsUniqueViolation(err)
}

// withTx runs fn inside a transaction and commits it. fn is re-run in a fresh
// transaction when the failure is classified as [Retryable]; any other error
// rolls back and is returned as is.
func (db *DB) withTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(maxTxRetries, retry.NewExponential(20*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.runTx(ctx, fn)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Err(err).Str("func", funcName).Msg("retrying transaction after transient failure")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// isNoRows reports whether err means an empty single-row result.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
