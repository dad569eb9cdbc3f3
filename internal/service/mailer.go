package service

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer is the outbound email capability consumed by the auth flow.
// Implementations report failures instead of swallowing them; retries
// are the mail infrastructure's problem, not ours.
type Mailer interface {
	SendOtp(to, code string) error
	SendPasswordReset(to, link string) error
}

// SMTPMailer sends through a plain SMTP dialer configured via mail.* keys.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:     viper.GetString("mail.host"),
		port:     viper.GetInt("mail.port"),
		from:     viper.GetString("mail.sender_address"),
		password: viper.GetString("mail.password"),
	}
}

func (m *SMTPMailer) SendOtp(to, code string) error {
	body := fmt.Sprintf("Your verification code is: %s\n\nIt is valid for 10 minutes.", code)
	return m.send(to, "Your verification code", body)
}

func (m *SMTPMailer) SendPasswordReset(to, link string) error {
	body := fmt.Sprintf("Click the link to reset your password: %s", link)
	return m.send(to, "Password reset request", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)

	return d.DialAndSend(msg)
}
