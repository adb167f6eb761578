// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is an issued login session. Only the keyed hash of the bearer token
// is persisted.
type Session struct {
	ID        int64     `json:"-"`
	TokenHash string    `json:"-"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsValid reports whether the session has not expired at now.
func (s Session) IsValid(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
