package application

import (
	"github.com/devpals/devpals-go/internal/config"
	"gopkg.in/gomail.v2"
)

// GomailMailer sends through an SMTP dialer.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewGomailMailer() *GomailMailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword),
		from:   config.MailFrom,
	}
}

func (m *GomailMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return m.dialer.DialAndSend(msg)
}
