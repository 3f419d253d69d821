package mailer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// SMTPTransport delivers mail through an authenticated SMTP relay.
type SMTPTransport struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

func NewSMTPTransport(host string, port int, user, password, from string, logger *slog.Logger) *SMTPTransport {
	dialer := gomail.NewDialer(host, port, user, password)
	return &SMTPTransport{
		dialer: dialer,
		from:   from,
		logger: logger,
	}
}

func (t *SMTPTransport) Name() string {
	return "smtp"
}

func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	from := msg.From
	if from == "" {
		from = fmt.Sprintf("Sistema Disciplinar <%s>", t.from)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	for _, att := range msg.Attachments {
		content := att.Content
		m.Attach(att.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
	}

	if err := t.dialer.DialAndSend(m); err != nil {
		t.logger.Error("smtp send failed", "error", err, "to", msg.To)
		return fmt.Errorf("smtp send failed: %w", err)
	}

	t.logger.Info("smtp send succeeded", "to", msg.To, "subject", msg.Subject)
	return nil
}
