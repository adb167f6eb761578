// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/models"
)

// pendingVerificationRepository is the SQL implementation of
// [PendingVerificationRepository]. Registration with an access code and
// verification are each a single transaction.
type pendingVerificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewPendingVerificationRepository constructs a [PendingVerificationRepository].
func NewPendingVerificationRepository(db *DB, logger *logger.Logger) PendingVerificationRepository {
	logger.Debug().Msg("creating pending verification repository")
	return &pendingVerificationRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePendingVerification stores p, redeeming accessCode first when given.
//
// Inside one transaction it:
//  1. purges an expired record for the same email, if any;
//  2. redeems the access code (conditional increment), failing with
//     [ErrAccessCodeNotRedeemable] when the ledger refuses it;
//  3. inserts the record; a unique violation on the email means a live
//     registration already exists → [ErrPendingVerificationExists].
//
// Any failure rolls back the whole transaction, so a refused insert never
// consumes a use of the code.
func (r *pendingVerificationRepository) CreatePendingVerification(ctx context.Context, p models.PendingVerification, accessCode string, now time.Time) (models.PendingVerification, models.AccessCode, error) {
	log := logger.FromContext(ctx)
	const funcName = "pendingVerificationRepository.CreatePendingVerification"

	p.Email = normalizeEmail(p.Email)

	var redeemed models.AccessCode
	err := r.withTx(ctx, funcName, func(tx *sql.Tx) error {
		stored := p
		redeemed = models.AccessCode{}

		query, args, err := buildDeleteExpiredPendingForEmailQuery(r.builder, stored.Email, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to purge expired pending verification")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if accessCode != "" {
			query, args, err = buildRedeemAccessCodeQuery(r.builder, accessCode, now)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			redeemed, err = scanAccessCode(tx.QueryRowContext(ctx, query, args...))
			if isNoRows(err) {
				log.Info().Str("func", funcName).Str("access_code", normalizeAccessCode(accessCode)).Msg("access code refused by ledger")
				return ErrAccessCodeNotRedeemable
			}
			if err != nil {
				log.Err(err).Str("func", funcName).Msg("failed to redeem access code")
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}

			code := redeemed.Code
			stored.AccessCode = &code
			stored.TrialExpiry = redeemed.ExtendFrom(now)
			stored.AccessLevel = models.AccessLevelExtended
		}

		query, args, err = buildInsertPendingQuery(r.builder, stored)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&stored.ID); err != nil {
			if r.IsUniqueViolation(err) {
				return ErrPendingVerificationExists
			}
			log.Err(err).Str("func", funcName).Msg("failed to insert pending verification")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		p = stored
		return nil
	})
	if err != nil {
		return models.PendingVerification{}, models.AccessCode{}, err
	}

	log.Debug().Str("func", funcName).Int64("pending_id", p.ID).Msg("pending verification stored")
	return p, redeemed, nil
}

// HasLivePendingVerification reports whether an unexpired registration
// holds email.
func (r *pendingVerificationRepository) HasLivePendingVerification(ctx context.Context, email string, now time.Time) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountLivePendingQuery(r.builder, email, now)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "pendingVerificationRepository.HasLivePendingVerification").Msg("failed to count pending verifications")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// ConsumePendingVerification claims the live record for tokenHash with a
// DELETE ... RETURNING, then inserts the verified user built from it.
//
// Error handling:
//   - nothing claimed (unknown, expired or already used) → [ErrPendingVerificationNotFound].
//   - user insert hits the unique email constraint → [ErrEmailAlreadyExists];
//     the claim is rolled back together with it.
func (r *pendingVerificationRepository) ConsumePendingVerification(ctx context.Context, tokenHash string, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)
	const funcName = "pendingVerificationRepository.ConsumePendingVerification"

	var user models.User
	err := r.withTx(ctx, funcName, func(tx *sql.Tx) error {
		query, args, err := buildClaimPendingQuery(r.builder, tokenHash, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		pending, err := scanPendingVerification(tx.QueryRowContext(ctx, query, args...))
		if isNoRows(err) {
			return ErrPendingVerificationNotFound
		}
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to claim pending verification")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildInsertUserFromPendingQuery(r.builder, pending, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		user, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if r.IsUniqueViolation(err) {
				return ErrEmailAlreadyExists
			}
			log.Err(err).Str("func", funcName).Msg("failed to insert verified user")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("func", funcName).Int64("user_id", user.UserID).Msg("email verified, user created")
	return user, nil
}

// DeleteExpiredPendingVerifications purges records whose link has expired.
func (r *pendingVerificationRepository) DeleteExpiredPendingVerifications(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredPendingQuery(r.builder, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execCount(ctx, r.DB, "pendingVerificationRepository.DeleteExpiredPendingVerifications", query, args)
}

// execCount runs a DML statement and returns the number of affected rows.
func execCount(ctx context.Context, db *DB, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
