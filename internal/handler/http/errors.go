// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading credentials and bodies from a
// request. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionToken is returned when neither an "Authorization" header
	// nor a session cookie is present.
	ErrNoSessionToken = errors.New("no session token in request")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathParameter is returned when a URL parameter has the wrong
	// shape, e.g. a non-numeric user ID.
	ErrInvalidPathParameter = errors.New("invalid path parameter")
)
