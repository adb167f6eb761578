// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// leave desk HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the wording consistent throughout the API.
package app

const (
	// MsgInternalServerError is returned for every 5xx so that storage
	// details never reach the client.
	MsgInternalServerError = "something went wrong, please try again"

	// MsgNotFound is returned when no route matches the request.
	MsgNotFound = "Not Found"

	// MsgEmailVerified confirms a successful email verification.
	MsgEmailVerified = "email verified, you can now sign in"

	// MsgLoggedOut confirms that the session was revoked.
	MsgLoggedOut = "logged out"

	// MsgPasswordResetRequested is returned for every forgot-password
	// request, whether or not the account exists.
	MsgPasswordResetRequested = "if an account exists for this email, a reset link has been sent"

	// MsgPasswordChanged confirms a password reset. All sessions of the user
	// are revoked at the same time.
	MsgPasswordChanged = "password changed, please sign in again"

	// MsgAccessCodeDeactivated confirms that an access code can no longer
	// be redeemed.
	MsgAccessCodeDeactivated = "access code deactivated"
)
