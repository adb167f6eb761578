// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSession stores session and returns it with its ID.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSessionQuery(r.builder, session)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.QueryRowContext(ctx, query, args...).Scan(&session.ID); err != nil {
		log.Err(err).Str("func", "sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("failed to insert session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// FindSessionByTokenHash returns the session for tokenHash if it has not
// expired at now, otherwise [ErrSessionNotFound].
func (r *sessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(r.builder, tokenHash, now)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := scanSession(r.QueryRowContext(ctx, query, args...))
	if isNoRows(err) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.FindSessionByTokenHash").Msg("failed to find session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// DeleteSession removes the session for tokenHash. Deleting a missing
// session is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	query, args, err := buildDeleteSessionsQuery(r.builder, sq.Eq{"token_hash": tokenHash})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	_, err = execCount(ctx, r.DB, "sessionRepository.DeleteSession", query, args)
	return err
}

// DeleteUserSessions removes every session of userID.
func (r *sessionRepository) DeleteUserSessions(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildDeleteSessionsQuery(r.builder, sq.Eq{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execCount(ctx, r.DB, "sessionRepository.DeleteUserSessions", query, args)
}

// DeleteExpiredSessions removes sessions that expired at or before now.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteSessionsQuery(r.builder, sq.LtOrEq{"expires_at": now})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return execCount(ctx, r.DB, "sessionRepository.DeleteExpiredSessions", query, args)
}
