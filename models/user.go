// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessLevel is the cached, human-readable label describing why a user
// currently has (or lacks) access. It is a display hint only: authorization
// decisions are always made by [User.HasAccess].
type AccessLevel string

const (
	AccessLevelTrial         AccessLevel = "trial"
	AccessLevelExtended      AccessLevel = "extended"
	AccessLevelSubscribed    AccessLevel = "subscribed"
	AccessLevelExpired       AccessLevel = "expired"
	AccessLevelAdministrator AccessLevel = "administrator"
	AccessLevelOrganization  AccessLevel = "organization"
)

// IsKnown reports whether l is one of the declared access levels.
func (l AccessLevel) IsKnown() bool {
	switch l {
	case AccessLevelTrial, AccessLevelExtended, AccessLevelSubscribed,
		AccessLevelExpired, AccessLevelAdministrator, AccessLevelOrganization:
		return true
	}
	return false
}

// User is a verified account. Rows are only ever created by consuming a
// [PendingVerification], so EmailVerified is true for every user produced by
// the public flow.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is stored lower-cased; uniqueness is therefore case-insensitive.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never exposed via JSON.
	PasswordHash string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	IsAdmin       bool `json:"is_admin"`
	EmailVerified bool `json:"email_verified"`

	// AccessLevel is a display hint, see [AccessLevel].
	AccessLevel AccessLevel `json:"access_level"`

	TrialStartedAt     *time.Time `json:"trial_started_at,omitempty"`
	TrialExpiry        *time.Time `json:"trial_expiry,omitempty"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasAccess reports whether the user may use protected features at now.
//
// Administrators always have access. Everyone else needs either an active
// subscription or an active trial; both comparisons are strict, so an expiry
// equal to now already denies access.
func (u User) HasAccess(now time.Time) bool {
	if u.IsAdmin {
		return true
	}
	if u.SubscriptionExpiry != nil && u.SubscriptionExpiry.After(now) {
		return true
	}
	if u.TrialExpiry != nil && u.TrialExpiry.After(now) {
		return true
	}
	return false
}

// EffectiveAccessLevel derives the label that matches the user's state at
// now. Unlike the cached AccessLevel field it can never be stale.
func (u User) EffectiveAccessLevel(now time.Time) AccessLevel {
	switch {
	case u.IsAdmin:
		return AccessLevelAdministrator
	case u.SubscriptionExpiry != nil && u.SubscriptionExpiry.After(now):
		if u.AccessLevel == AccessLevelOrganization {
			return AccessLevelOrganization
		}
		return AccessLevelSubscribed
	case u.TrialExpiry != nil && u.TrialExpiry.After(now):
		if u.AccessLevel == AccessLevelExtended {
			return AccessLevelExtended
		}
		return AccessLevelTrial
	default:
		return AccessLevelExpired
	}
}

// AccessExpiry returns the later of the trial and subscription expiries, or
// nil when neither is set.
func (u User) AccessExpiry() *time.Time {
	switch {
	case u.SubscriptionExpiry == nil:
		return u.TrialExpiry
	case u.TrialExpiry == nil:
		return u.SubscriptionExpiry
	case u.SubscriptionExpiry.After(*u.TrialExpiry):
		return u.SubscriptionExpiry
	default:
		return u.TrialExpiry
	}
}

// FullName joins first and last name for greetings.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
