package email

import (
	"errors"
	"fmt"
	"net/textproto"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for the join link (e.g. "https://club.example.org")
}

// SMTPEmailService delivers access-token emails. The token travels in a
// URL fragment, which browsers never send to servers or proxies, so the
// link can pass through corporate mail scanners without leaking the token.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendAccessTokenEmail mails the single-use join link to the given address.
func (s *SMTPEmailService) SendAccessTokenEmail(to, token string) error {
	joinURL := fmt.Sprintf("%s/join#%s", s.config.BaseURL, token)

	subject := "Your club community access link"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome!</h2>
			<p>Your request to join the club community channel has been verified.</p>
			<p><a href="%s">Join the community</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link can be used once and expires in 24 hours.</p>
			<p>If you didn't request access, please ignore this email.</p>
		</body>
		</html>
	`, joinURL, joinURL)

	plainBody := fmt.Sprintf(`
Welcome!

Your request to join the club community channel has been verified. Visit:
%s

This link can be used once and expires in 24 hours.

If you didn't request access, please ignore this email.
	`, joinURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsThrottled reports whether the send failed on a transient SMTP volume
// limit (4xx reply). Callers surface these as retry-later rather than as
// internal failures.
func IsThrottled(err error) bool {
	var smtpErr *textproto.Error
	if !errors.As(err, &smtpErr) {
		return false
	}
	switch smtpErr.Code {
	case 421, 450, 451, 452:
		return true
	}
	return false
}
