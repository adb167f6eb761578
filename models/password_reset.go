// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PasswordReset is the single active reset request for an email address.
type PasswordReset struct {
	ID        int64      `json:"-"`
	Email     string     `json:"email"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordReset model.
func (p PasswordReset) TableName() string {
	return "password_resets"
}

// IsUsable reports whether the request is unused and unexpired at now.
func (p PasswordReset) IsUsable(now time.Time) bool {
	return p.UsedAt == nil && p.ExpiresAt.After(now)
}
