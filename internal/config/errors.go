// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. Each is wrapped with the
// offending field.
var (
	// ErrInvalidAppConfigs indicates missing secret keys or base URL.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates a non-positive policy value.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMailConfigs indicates an SMTP host without sender address.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
