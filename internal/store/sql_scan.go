// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-leave-desk/models"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.IsAdmin,
		&u.EmailVerified,
		&u.AccessLevel,
		&u.TrialStartedAt,
		&u.TrialExpiry,
		&u.SubscriptionExpiry,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	return u, err
}

func scanPendingVerification(row rowScanner) (models.PendingVerification, error) {
	var p models.PendingVerification
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FirstName,
		&p.LastName,
		&p.PasswordHash,
		&p.TokenHash,
		&p.AccessCode,
		&p.TrialExpiry,
		&p.AccessLevel,
		&p.CreatedAt,
		&p.ExpiresAt,
	)
	return p, err
}

func scanSession(row rowScanner) (models.Session, error) {
	var s models.Session
	err := row.Scan(
		&s.ID,
		&s.TokenHash,
		&s.UserID,
		&s.ExpiresAt,
		&s.IPAddress,
		&s.UserAgent,
		&s.CreatedAt,
	)
	return s, err
}

func scanAccessCode(row rowScanner) (models.AccessCode, error) {
	var c models.AccessCode
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.Description,
		&c.Duration,
		&c.DurationType,
		&c.MaxUses,
		&c.CurrentUses,
		&c.IsActive,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.ExpiresAt,
	)
	return c, err
}

func scanPasswordReset(row rowScanner) (models.PasswordReset, error) {
	var r models.PasswordReset
	err := row.Scan(
		&r.ID,
		&r.Email,
		&r.TokenHash,
		&r.ExpiresAt,
		&r.UsedAt,
		&r.CreatedAt,
	)
	return r, err
}
