package logic

import (
	"mention_herald/shared"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_mailer.go -package mocks mention_herald/logic IMailer

// IMailer delivers one notification email over the configured SMTP transport.
type IMailer interface {
	Send(subject, htmlBody string) error
}

type mailer struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewMailer(cfg *shared.Config, logger shared.ILogger) IMailer {
	return &mailer{cfg, logger}
}

func (m *mailer) Send(subject, htmlBody string) error {

	smtp := &m.cfg.Smtp

	msg := mail.NewMsg()
	if err := msg.From(smtp.From); err != nil {
		return err
	}
	if err := msg.To(smtp.To); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{mail.WithPort(int(smtp.Port))}
	if smtp.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(smtp.User),
			mail.WithPassword(m.cfg.Secrets.SmtpPassword))
	}
	client, err := mail.NewClient(smtp.Host, opts...)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}
