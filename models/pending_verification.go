// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PendingVerification is a registration that has not been confirmed by email
// yet. It carries everything needed to materialize the [User] once the
// verification link is followed.
type PendingVerification struct {
	ID int64 `json:"-"`

	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"-"`

	// TokenHash is the keyed hash of the verification token; the raw token
	// only ever exists in the email.
	TokenHash string `json:"-"`

	// AccessCode is the code redeemed during registration, if any.
	AccessCode *string `json:"access_code,omitempty"`

	TrialExpiry time.Time   `json:"trial_expiry"`
	AccessLevel AccessLevel `json:"access_level"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TableName returns the name of the database table
// associated with the PendingVerification model.
func (p PendingVerification) TableName() string {
	return "pending_verifications"
}

// IsLive reports whether the verification link can still be used at now.
func (p PendingVerification) IsLive(now time.Time) bool {
	return p.ExpiresAt.After(now)
}
