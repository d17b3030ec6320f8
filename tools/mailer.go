package tools

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"wordnest/config"
)

// Mailer sends transactional email. SMTPMailer is the real thing; when
// SMTP is not configured NewMailer falls back to LogMailer so dev setups
// still surface the links in the server log.
type Mailer interface {
	// SendPasswordReset mails the raw "selector.validator" token.
	// The caller propagates a failure here: the user must not be told
	// "check your email" when nothing was sent.
	SendPasswordReset(toEmail, rawToken string, expiresIn time.Duration) error

	// SendPasswordChanged notifies that the password was changed.
	// Callers treat this as best-effort.
	SendPasswordChanged(toEmail string) error

	// SendVerificationCode mails the account verification code.
	SendVerificationCode(toEmail, code string) error
}

func NewMailer(cfg config.Configuration) Mailer {
	if strings.TrimSpace(cfg.Mail.SmtpHost) == "" {
		log.Println("mailer: smtp not configured, using log mailer")
		return LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

type SMTPMailer struct {
	cfg config.Configuration
}

func (m *SMTPMailer) SendPasswordReset(toEmail, rawToken string, expiresIn time.Duration) error {
	link := rawToken
	if base := strings.TrimSpace(m.cfg.Mail.ResetURLBase); base != "" {
		link = strings.TrimRight(base, "/") + "/" + rawToken
	}
	body := fmt.Sprintf(
		"Hi!\r\n\r\nSomeone asked to reset the password for this account.\r\n"+
			"Use the link below within %d minutes:\r\n\r\n%s\r\n\r\n"+
			"If this wasn't you, you can ignore this email.\r\n",
		int(expiresIn.Minutes()), link)
	return m.send(toEmail, "Reset your password", body)
}

func (m *SMTPMailer) SendPasswordChanged(toEmail string) error {
	body := "Hi!\r\n\r\nYour password was just changed. " +
		"If this wasn't you, reset it again right away.\r\n"
	return m.send(toEmail, "Your password was changed", body)
}

func (m *SMTPMailer) SendVerificationCode(toEmail, code string) error {
	body := fmt.Sprintf("Hi!\r\n\r\nYour verification code is: %s\r\n", code)
	return m.send(toEmail, "Verify your email", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	from := m.cfg.Mail.FromAddress
	if from == "" {
		from = m.cfg.Mail.SmtpUser
	}
	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body)

	addr := m.cfg.Mail.SmtpHost + ":" + m.cfg.Mail.SmtpPort
	var auth smtp.Auth
	if m.cfg.Mail.SmtpUser != "" {
		auth = smtp.PlainAuth("", m.cfg.Mail.SmtpUser, m.cfg.Mail.SmtpPass, m.cfg.Mail.SmtpHost)
	}
	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

// LogMailer writes the mail to the log instead of sending it.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(toEmail, rawToken string, expiresIn time.Duration) error {
	// The raw token never goes to the log, only its length.
	log.Printf("mailer: password reset for %s, token of %d chars, valid=%s", toEmail, len(rawToken), expiresIn)
	return nil
}

func (LogMailer) SendPasswordChanged(toEmail string) error {
	log.Printf("mailer: password changed notice for %s", toEmail)
	return nil
}

func (LogMailer) SendVerificationCode(toEmail, code string) error {
	log.Printf("mailer: verification code for %s: %s", toEmail, code)
	return nil
}

// NopMailer discards everything. Used by tests.
type NopMailer struct{}

func (NopMailer) SendPasswordReset(string, string, time.Duration) error { return nil }
func (NopMailer) SendPasswordChanged(string) error                     { return nil }
func (NopMailer) SendVerificationCode(string, string) error            { return nil }
