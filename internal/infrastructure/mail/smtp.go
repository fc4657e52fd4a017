// Package mail sends outbound email over plain SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer implements ports.Mailer against a single SMTP relay.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	return &SMTPMailer{addr: host + ":" + port, from: from}
}

// SendSubscriptionConfirmation welcomes a new newsletter subscriber and
// includes their unsubscribe link.
func (m *SMTPMailer) SendSubscriptionConfirmation(ctx context.Context, to, unsubscribeURL string) error {
	subject := "You are subscribed"
	body := fmt.Sprintf(`<html><body>
<p>Thanks for subscribing to the newsletter.</p>
<p>You will receive an email whenever new work is published.</p>
<p>Changed your mind? <a href="%s">Unsubscribe</a> at any time.</p>
</body></html>`, unsubscribeURL)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, body))

	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
