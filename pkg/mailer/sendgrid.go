package mailer

import (
	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional mail. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(toName, toEmail, subject, body string) error
}

type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

// NewSendGridMailer returns a nil Mailer when no API key is configured;
// callers treat a nil Mailer as mail disabled. The return type must stay the
// interface: a nil *SendGridMailer stored in a Mailer would compare non-nil
// and the disabled check downstream would dereference it.
func NewSendGridMailer(apiKey, fromName, fromEmail string) Mailer {
	if apiKey == "" {
		return nil
	}
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SendGridMailer) Send(toName, toEmail, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := m.client.Send(message)
	if err != nil {
		return errors.Wrap(err, "send mail")
	}
	if resp.StatusCode >= 400 {
		return errors.Errorf("send mail: status %d", resp.StatusCode)
	}
	return nil
}
