// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/models"
)

type passwordResetRepository struct {
	*DB
	logger *logger.Logger
}

// NewPasswordResetRepository constructs a [PasswordResetRepository].
func NewPasswordResetRepository(db *DB, logger *logger.Logger) PasswordResetRepository {
	logger.Debug().Msg("creating password reset repository")
	return &passwordResetRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertPasswordReset stores reset, overwriting an earlier request for the
// same email so only the newest token is ever valid.
func (r *passwordResetRepository) UpsertPasswordReset(ctx context.Context, reset models.PasswordReset) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertPasswordResetQuery(r.builder, reset)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "passwordResetRepository.UpsertPasswordReset").Msg("failed to upsert password reset")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindPasswordResetByEmail returns the current request for email, used or
// not.
func (r *passwordResetRepository) FindPasswordResetByEmail(ctx context.Context, email string) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPasswordResetQuery(r.builder, email)
	if err != nil {
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	reset, err := scanPasswordReset(r.QueryRowContext(ctx, query, args...))
	if isNoRows(err) {
		return models.PasswordReset{}, ErrPasswordResetNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "passwordResetRepository.FindPasswordResetByEmail").Msg("failed to find password reset")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reset, nil
}

// ConsumePasswordReset runs the whole reset in one transaction:
//  1. claim the unused, unexpired request (sets used_at);
//  2. store the new password hash on the user;
//  3. delete all of the user's sessions.
//
// Error handling:
//   - nothing claimed → [ErrPasswordResetNotFound].
//   - the account no longer exists → [ErrNoUserWasFound]; nothing is changed.
func (r *passwordResetRepository) ConsumePasswordReset(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)
	const funcName = "passwordResetRepository.ConsumePasswordReset"

	var userID int64
	err := r.withTx(ctx, funcName, func(tx *sql.Tx) error {
		query, args, err := buildClaimPasswordResetQuery(r.builder, tokenHash, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var email string
		err = tx.QueryRowContext(ctx, query, args...).Scan(&email)
		if isNoRows(err) {
			return ErrPasswordResetNotFound
		}
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to claim password reset")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildUpdatePasswordByEmailQuery(r.builder, email, newPasswordHash)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		err = tx.QueryRowContext(ctx, query, args...).Scan(&userID)
		if isNoRows(err) {
			return ErrNoUserWasFound
		}
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to update password")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildDeleteSessionsQuery(r.builder, sq.Eq{"user_id": userID})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to revoke sessions")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Str("func", funcName).Int64("user_id", userID).Msg("password reset, sessions revoked")
	return userID, nil
}

// DeleteExpiredPasswordResets purges expired and already used requests.
func (r *passwordResetRepository) DeleteExpiredPasswordResets(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredPasswordResetsQuery(r.builder, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execCount(ctx, r.DB, "passwordResetRepository.DeleteExpiredPasswordResets", query, args)
}
