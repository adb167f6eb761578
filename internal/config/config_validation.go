// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenHashKey == "" {
		return fmt.Errorf("%w: token hash key is empty", ErrInvalidAppConfigs)
	}
	if cfg.App.CSRFSignKey == "" || cfg.App.CSRFIssuer == "" || cfg.App.CSRFTokenDuration <= 0 {
		return fmt.Errorf("%w: csrf sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}
	if u, err := url.Parse(cfg.App.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q is not absolute", ErrInvalidAppConfigs, cfg.App.BaseURL)
	}

	a := cfg.Auth
	if a.MinPasswordLength <= 0 || a.MinNameLength <= 0 || a.MaxFailedLogins <= 0 {
		return fmt.Errorf("%w: length and attempt limits must be positive", ErrInvalidAuthConfigs)
	}
	for name, d := range map[string]int64{
		"trial duration":           int64(a.TrialDuration),
		"pending verification ttl": int64(a.PendingVerificationTTL),
		"session ttl":              int64(a.SessionTTL),
		"remember me session ttl":  int64(a.RememberMeSessionTTL),
		"password reset ttl":       int64(a.PasswordResetTTL),
		"failed login window":      int64(a.FailedLoginWindow),
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidAuthConfigs, name)
		}
	}
	if a.PasswordResetCooldown < 0 {
		return fmt.Errorf("%w: password reset cooldown is negative", ErrInvalidAuthConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Mail.Host != "" && (cfg.Mail.From == "" || cfg.Mail.Port <= 0) {
		return fmt.Errorf("%w: smtp host needs a sender address and port", ErrInvalidMailConfigs)
	}
	if cfg.Mail.APIURL != "" {
		if u, err := url.Parse(cfg.Mail.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: email api url %q is not absolute", ErrInvalidMailConfigs, cfg.Mail.APIURL)
		}
		if cfg.Mail.From == "" {
			return fmt.Errorf("%w: email api needs a sender address", ErrInvalidMailConfigs)
		}
	}

	if cfg.Workers.SweepInterval <= 0 {
		return fmt.Errorf("%w: sweep interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
