// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/models"
)

// accessCodeRepository is the administrative side of the access-code ledger.
// Redemption happens inside [PendingVerificationRepository.CreatePendingVerification]
// so that it shares the registration transaction.
type accessCodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccessCodeRepository constructs an [AccessCodeRepository].
func NewAccessCodeRepository(db *DB, logger *logger.Logger) AccessCodeRepository {
	logger.Debug().Msg("creating access code repository")
	return &accessCodeRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccessCode inserts code with zero uses. Codes are stored upper-cased.
func (r *accessCodeRepository) CreateAccessCode(ctx context.Context, code models.AccessCode) (models.AccessCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccessCodeQuery(r.builder, code)
	if err != nil {
		return models.AccessCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAccessCode(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.IsUniqueViolation(err) {
			return models.AccessCode{}, ErrAccessCodeAlreadyExists
		}
		log.Err(err).Str("func", "accessCodeRepository.CreateAccessCode").Msg("failed to insert access code")
		return models.AccessCode{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "accessCodeRepository.CreateAccessCode").Str("code", created.Code).Msg("access code created")
	return created, nil
}

// FindAccessCode returns the ledger row for code.
func (r *accessCodeRepository) FindAccessCode(ctx context.Context, code string) (models.AccessCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccessCodeQuery(r.builder, code)
	if err != nil {
		return models.AccessCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanAccessCode(r.QueryRowContext(ctx, query, args...))
	if isNoRows(err) {
		return models.AccessCode{}, ErrAccessCodeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accessCodeRepository.FindAccessCode").Msg("failed to find access code")
		return models.AccessCode{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListAccessCodes returns every code, newest first.
func (r *accessCodeRepository) ListAccessCodes(ctx context.Context) ([]models.AccessCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccessCodesQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "accessCodeRepository.ListAccessCodes").Msg("failed to list access codes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	codes := make([]models.AccessCode, 0, 16)
	for rows.Next() {
		code, scanErr := scanAccessCode(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "accessCodeRepository.ListAccessCodes").Msg("failed to scan access code row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		codes = append(codes, code)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "accessCodeRepository.ListAccessCodes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return codes, nil
}

// DeactivateAccessCode stops code from being redeemed. Existing redemptions
// are unaffected.
func (r *accessCodeRepository) DeactivateAccessCode(ctx context.Context, code string) error {
	query, args, err := buildDeactivateAccessCodeQuery(r.builder, code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := execCount(ctx, r.DB, "accessCodeRepository.DeactivateAccessCode", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAccessCodeNotFound
	}

	return nil
}
