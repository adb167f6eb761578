// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginResponse is returned by POST /api/auth/login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CSRFToken string    `json:"csrf_token"`
	User      User      `json:"user"`
}

// CurrentUserResponse is returned by GET /api/user/me.
type CurrentUserResponse struct {
	User                 User        `json:"user"`
	HasAccess            bool        `json:"has_access"`
	EffectiveAccessLevel AccessLevel `json:"effective_access_level"`
}

// AccessStatusResponse is returned by GET /api/access/status.
type AccessStatusResponse struct {
	HasAccess   bool        `json:"has_access"`
	AccessLevel AccessLevel `json:"access_level"`
	ExpiresAt   *time.Time  `json:"expires_at,omitempty"`
}

// CSRFTokenResponse is returned by GET /api/auth/csrf.
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}
