// Package mail implements the MailSender domain service against an HTTP mail API.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"tienda/config"
	"tienda/internal/domain/service"
)

const requestTimeout = 15 * time.Second

// restySender posts transactional mail to the configured mail API endpoint.
type restySender struct {
	client      *resty.Client
	from        string
	frontendURL string
	logger      *slog.Logger
}

// sendRequest is the mail API request body.
type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewRestySender builds a MailSender backed by the HTTP mail API.
func NewRestySender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.Endpoint == "" {
		return nil, errors.New("mail endpoint must be configured")
	}

	client := resty.New().
		SetBaseURL(cfg.Mail.Endpoint).
		SetTimeout(requestTimeout).
		SetAuthToken(cfg.Mail.APIKey)

	return &restySender{
		client:      client,
		from:        cfg.Mail.From,
		frontendURL: cfg.Mail.FrontendURL,
		logger:      logger,
	}, nil
}

// SendConfirmation sends the account confirmation mail carrying the opaque action token.
func (s *restySender) SendConfirmation(ctx context.Context, to, name, token string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Confirm your account by following this link:</p><p><a href=%q>Confirm account</a></p>",
		name, s.frontendURL+"/confirm/"+token,
	)

	return s.send(ctx, to, "Confirm your account", body)
}

// SendPasswordReset sends the password recovery mail carrying the opaque action token.
func (s *restySender) SendPasswordReset(ctx context.Context, to, name, token string) error {
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Reset your password by following this link:</p><p><a href=%q>Reset password</a></p>",
		name, s.frontendURL+"/reset-password/"+token,
	)

	return s.send(ctx, to, "Reset your password", body)
}

func (s *restySender) send(ctx context.Context, to, subject, html string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:    s.from,
			To:      to,
			Subject: subject,
			HTML:    html,
		}).
		Post("/send")
	if err != nil {
		return errors.Wrap(err, "failed to call mail api")
	}
	if resp.IsError() {
		return errors.Errorf("mail api returned status %d", resp.StatusCode())
	}

	s.logger.Debug("mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
