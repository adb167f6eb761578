package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"github.com/MKhiriev/go-leave-desk/internal/metrics"
)

const messagesPath = "/messages"

var (
	// ErrMailAPIRejected is returned for 4xx answers; resending the same
	// message will not help.
	ErrMailAPIRejected = errors.New("email api rejected the message")
	// ErrMailAPIUnavailable is returned for 5xx answers.
	ErrMailAPIUnavailable = errors.New("email api unavailable")
)

// apiMessage is the JSON body posted to the email API.
type apiMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Tag     string `json:"tag"`
}

// HTTPGateway sends emails through a transactional email HTTP API. Every
// message is one POST to {APIURL}/messages authenticated with APIKey.
type HTTPGateway struct {
	client *resty.Client
	from   string
	logger *logger.Logger
}

// NewHTTPGateway builds a gateway for cfg.APIURL.
func NewHTTPGateway(cfg config.Mail, log *logger.Logger) *HTTPGateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.APITimeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &HTTPGateway{client: client, from: cfg.From, logger: log}
}

// SendVerification implements [Gateway].
func (g *HTTPGateway) SendVerification(ctx context.Context, email VerificationEmail) error {
	body, err := render(verificationTemplate, email)
	if err != nil {
		return err
	}
	return g.send(ctx, KindVerification, email.To, verificationSubject, body)
}

// SendPasswordReset implements [Gateway].
func (g *HTTPGateway) SendPasswordReset(ctx context.Context, email PasswordResetEmail) error {
	body, err := render(passwordResetTemplate, email)
	if err != nil {
		return err
	}
	return g.send(ctx, KindPasswordReset, email.To, passwordResetSubject, body)
}

func (g *HTTPGateway) send(ctx context.Context, kind, to, subject, body string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(to) == "" {
		return ErrEmptyRecipient
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(apiMessage{From: g.from, To: to, Subject: subject, HTML: body, Tag: kind}).
		Post(messagesPath)
	if err == nil {
		err = mapAPIError(resp)
	} else {
		err = fmt.Errorf("email api request: %w", err)
	}
	if err != nil {
		metrics.RecordNotification(kind, metrics.OutcomeFailure)
		log.Err(err).Str("func", "HTTPGateway.send").Str("kind", kind).Msg("failed to send email")
		return err
	}

	metrics.RecordNotification(kind, metrics.OutcomeSuccess)
	log.Info().Str("func", "HTTPGateway.send").Str("kind", kind).Str("to", to).Msg("email sent")
	return nil
}

func mapAPIError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrMailAPIUnavailable, resp.StatusCode(), body)
	case resp.StatusCode() >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrMailAPIRejected, resp.StatusCode(), body)
	default:
		return fmt.Errorf("email api: unexpected http %d", resp.StatusCode())
	}
}
