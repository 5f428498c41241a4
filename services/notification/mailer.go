package notification

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer sends email over a plain SMTP relay. No email SDK is in
// use; the relay is configured by the deployment.
type SMTPMailer struct {
	Addr string // host:port
	From string
	Auth smtp.Auth
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.From, to, subject, body))

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.Addr, m.Auth, m.From, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s failed: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
