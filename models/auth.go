// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegistrationRequest is the sign-up payload.
type RegistrationRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	AccessCode string `json:"access_code,omitempty"`
}

// Registration is the outcome of a successful sign-up. The raw verification
// token is only handed to the notification gateway and to in-process callers;
// it is never serialized.
type Registration struct {
	Email             string      `json:"email"`
	VerificationToken string      `json:"-"`
	TrialExpiry       time.Time   `json:"trial_expiry"`
	AccessLevel       AccessLevel `json:"access_level"`
	AccessCodeSummary string      `json:"access_code_summary,omitempty"`
}

// LoginRequest carries credentials plus the client metadata recorded on the
// session.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
	IPAddress  string `json:"-"`
	UserAgent  string `json:"-"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User         User      `json:"user"`
	SessionToken string    `json:"token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// VerifyEmailRequest is the body of POST /api/auth/verify.
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// ForgotPasswordRequest is the body of POST /api/auth/password/forgot.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/password/reset.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
