// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers account emails: the verification link after
// registration and the password reset link.
package notify

import (
	"context"
	"time"
)

//go:generate mockgen -source=notify.go -destination=../mock/notify_mock.go -package=mock

// Gateway sends account emails. Callers treat a send error as non-fatal.
type Gateway interface {
	SendVerification(ctx context.Context, email VerificationEmail) error
	SendPasswordReset(ctx context.Context, email PasswordResetEmail) error
}

// VerificationEmail is the data of the registration confirmation email.
type VerificationEmail struct {
	To        string
	FirstName string
	Link      string
	// AccessCode is empty when the registration used no code.
	AccessCode        string
	AccessCodeSummary string
	TrialExpiry       time.Time
}

// PasswordResetEmail is the data of the password reset email.
type PasswordResetEmail struct {
	To        string
	FirstName string
	Link      string
	ExpiresAt time.Time
}

// Kinds used as the metrics label.
const (
	KindVerification  = "verification"
	KindPasswordReset = "password_reset"
)
