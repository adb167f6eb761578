// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/metrics"
)

// LogGateway logs outgoing emails instead of sending them. [NewGateway]
// picks it when neither a mail API URL nor an SMTP host is configured.
// Links carry live tokens, so they are only written at debug level.
type LogGateway struct {
	logger *logger.Logger
}

// NewLogGateway builds a [LogGateway].
func NewLogGateway(log *logger.Logger) *LogGateway {
	return &LogGateway{logger: log}
}

// SendVerification implements [Gateway].
func (g *LogGateway) SendVerification(_ context.Context, email VerificationEmail) error {
	g.logger.Info().
		Str("kind", KindVerification).
		Str("to", email.To).
		Str("access_code", email.AccessCode).
		Time("trial_expiry", email.TrialExpiry).
		Msg("verification email (delivery disabled)")
	g.logger.Debug().
		Str("kind", KindVerification).
		Str("to", email.To).
		Str("link", email.Link).
		Msg("verification link")
	metrics.RecordNotification(KindVerification, metrics.OutcomeSuccess)
	return nil
}

// SendPasswordReset implements [Gateway].
func (g *LogGateway) SendPasswordReset(_ context.Context, email PasswordResetEmail) error {
	g.logger.Info().
		Str("kind", KindPasswordReset).
		Str("to", email.To).
		Time("expires_at", email.ExpiresAt).
		Msg("password reset email (delivery disabled)")
	g.logger.Debug().
		Str("kind", KindPasswordReset).
		Str("to", email.To).
		Str("link", email.Link).
		Msg("password reset link")
	metrics.RecordNotification(KindPasswordReset, metrics.OutcomeSuccess)
	return nil
}

// NewGateway returns an [HTTPGateway] when cfg names an API URL, an
// [SMTPGateway] when it names an SMTP host, otherwise a [LogGateway].
func NewGateway(cfg config.Mail, log *logger.Logger) Gateway {
	if cfg.APIURL != "" {
		return NewHTTPGateway(cfg, log)
	}
	if cfg.Host == "" {
		log.Warn().Msg("no mail api or smtp host configured, emails will be logged")
		return NewLogGateway(log)
	}
	return NewSMTPGateway(cfg, log)
}
