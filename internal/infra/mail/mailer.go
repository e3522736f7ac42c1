// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"avo/config"
	"avo/internal/domain/service"
)

// smtpMailer implements the Mailer interface on top of an SMTP relay.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is required")
	}

	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.SMTP.From,
		logger: logger,
	}, nil
}

// SendOTP delivers a one-time verification code to the given address.
func (m *smtpMailer) SendOTP(ctx context.Context, to string, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Your one-time verification code is %s. It is valid for a single use.", code)

	return m.send(ctx, to, subject, body)
}

// SendPasswordReset delivers a password reset token to the given address.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to string, token string) error {
	subject := "Password reset request"
	body := fmt.Sprintf("Use the following token to reset your password: %s\nThe token expires shortly and can be used once.", token)

	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "set from address")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "set to address")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Error("failed to send mail",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "send mail")
	}

	m.logger.Info("mail sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}
