// Package mail delivers transactional email over SMTP.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Sender sends HTML mail through a configured SMTP relay.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender creates a sender for the given relay credentials.
func NewSender(host string, port int, user, pass string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

// Send delivers one HTML message.
func (s *Sender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
