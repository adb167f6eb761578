// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/metrics"
)

// ErrEmptyRecipient is returned when an email has no recipient.
var ErrEmptyRecipient = errors.New("empty recipient")

// SMTPGateway sends emails through an SMTP relay with gomail.
type SMTPGateway struct {
	cfg    config.Mail
	dialer *gomail.Dialer
	// sender replaces the dialer when set.
	sender gomail.Sender
	logger *logger.Logger
}

// NewSMTPGateway builds a gateway for cfg. No connection is opened until the
// first email is sent.
func NewSMTPGateway(cfg config.Mail, log *logger.Logger) *SMTPGateway {
	return &SMTPGateway{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: log,
	}
}

// SendVerification implements [Gateway].
func (g *SMTPGateway) SendVerification(ctx context.Context, email VerificationEmail) error {
	body, err := render(verificationTemplate, email)
	if err != nil {
		return err
	}
	return g.send(ctx, KindVerification, email.To, verificationSubject, body)
}

// SendPasswordReset implements [Gateway].
func (g *SMTPGateway) SendPasswordReset(ctx context.Context, email PasswordResetEmail) error {
	body, err := render(passwordResetTemplate, email)
	if err != nil {
		return err
	}
	return g.send(ctx, KindPasswordReset, email.To, passwordResetSubject, body)
}

func (g *SMTPGateway) send(ctx context.Context, kind, to, subject, body string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(to) == "" {
		return ErrEmptyRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage(gomail.SetEncoding(gomail.Unencoded))
	m.SetHeader("From", g.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	var err error
	if g.sender != nil {
		err = gomail.Send(g.sender, m)
	} else {
		err = g.dialer.DialAndSend(m)
	}
	if err != nil {
		metrics.RecordNotification(kind, metrics.OutcomeFailure)
		log.Err(err).Str("func", "SMTPGateway.send").Str("kind", kind).Msg("failed to send email")
		return fmt.Errorf("send email: %w", err)
	}

	metrics.RecordNotification(kind, metrics.OutcomeSuccess)
	log.Info().Str("func", "SMTPGateway.send").Str("kind", kind).Str("to", to).Msg("email sent")
	return nil
}
