// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-leave-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and updates verified accounts. Users are created only
// by [PendingVerificationRepository.ConsumePendingVerification].
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	SetSubscriptionExpiry(ctx context.Context, userID int64, expiry *time.Time, level models.AccessLevel) error
	SetAdmin(ctx context.Context, email string, isAdmin bool, level models.AccessLevel) error
}

// PendingVerificationRepository stores registrations awaiting email
// confirmation.
type PendingVerificationRepository interface {
	// CreatePendingVerification stores p. When accessCode is non-empty the
	// code is redeemed in the same transaction and p's trial expiry and
	// access level are replaced by what the code grants. The returned
	// AccessCode is the redeemed ledger row (zero when no code was given).
	CreatePendingVerification(ctx context.Context, p models.PendingVerification, accessCode string, now time.Time) (models.PendingVerification, models.AccessCode, error)

	HasLivePendingVerification(ctx context.Context, email string, now time.Time) (bool, error)

	// ConsumePendingVerification atomically claims the live record for
	// tokenHash, creates the verified user from it and deletes the record.
	ConsumePendingVerification(ctx context.Context, tokenHash string, now time.Time) (models.User, error)

	DeleteExpiredPendingVerifications(ctx context.Context, now time.Time) (int64, error)
}

// SessionRepository stores login sessions by token hash.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindSessionByTokenHash(ctx context.Context, tokenHash string, now time.Time) (models.Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteUserSessions(ctx context.Context, userID int64) (int64, error)
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// AccessCodeRepository is the access-code ledger.
type AccessCodeRepository interface {
	CreateAccessCode(ctx context.Context, code models.AccessCode) (models.AccessCode, error)
	FindAccessCode(ctx context.Context, code string) (models.AccessCode, error)
	ListAccessCodes(ctx context.Context) ([]models.AccessCode, error)
	DeactivateAccessCode(ctx context.Context, code string) error
}

// PasswordResetRepository keeps at most one reset request per email.
type PasswordResetRepository interface {
	// UpsertPasswordReset replaces any previous request for the same email.
	UpsertPasswordReset(ctx context.Context, reset models.PasswordReset) error
	FindPasswordResetByEmail(ctx context.Context, email string) (models.PasswordReset, error)

	// ConsumePasswordReset marks the request used, stores the new password
	// hash and deletes all sessions of the user in one transaction. It
	// returns the affected user's ID.
	ConsumePasswordReset(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (int64, error)

	DeleteExpiredPasswordResets(ctx context.Context, now time.Time) (int64, error)
}
