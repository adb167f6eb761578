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

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// FindUserByEmail returns the user registered under email (case-insensitive).
//
// Error handling:
//   - empty result → [ErrNoUserWasFound].
//   - query or scan failure → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByEmail", sq.Eq{"email": normalizeEmail(email)})
}

// FindUserByID returns the user with the given ID.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if isNoRows(err) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ExistsByEmail reports whether a user is registered under email.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserExistsQuery(r.builder, email)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ExistsByEmail").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "userRepository.ExistsByEmail").Msg("failed to count users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// UpdateLastLogin stamps last_login_at.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	query, args, err := buildUpdateLastLoginQuery(r.builder, userID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "userRepository.UpdateLastLogin", query, args)
}

// SetSubscriptionExpiry sets (or clears with nil) the subscription expiry
// together with the cached access level.
func (r *userRepository) SetSubscriptionExpiry(ctx context.Context, userID int64, expiry *time.Time, level models.AccessLevel) error {
	query, args, err := buildSetSubscriptionQuery(r.builder, userID, expiry, level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "userRepository.SetSubscriptionExpiry", query, args)
}

// SetAdmin promotes or demotes the user registered under email and stores
// level as the cached access level.
func (r *userRepository) SetAdmin(ctx context.Context, email string, isAdmin bool, level models.AccessLevel) error {
	query, args, err := buildSetAdminQuery(r.builder, email, isAdmin, level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execAffectingOne(ctx, "userRepository.SetAdmin", query, args)
}

// execAffectingOne runs an UPDATE that must match a user; zero affected rows
// maps to [ErrNoUserWasFound].
func (r *userRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
