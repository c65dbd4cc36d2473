package site

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/config"
)

const maxMessageLength = 5000

// ErrMailerNotConfigured is returned when contact mail has nowhere to go.
var ErrMailerNotConfigured = errors.New("SMTP credentials not configured")

// Message is a submitted contact form.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate checks the form fields before anything is sent.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return errors.New("a valid email address is required")
	}
	if strings.TrimSpace(m.Body) == "" {
		return errors.New("message is required")
	}
	if len(m.Body) > maxMessageLength {
		return fmt.Errorf("message is longer than %d characters", maxMessageLength)
	}
	return nil
}

// Mailer delivers contact messages.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends contact messages with PLAIN auth over SMTP.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	send sendFunc
}

// NewSMTPMailer returns a mailer for cfg.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

// Send delivers m to the configured inbox. net/smtp has no context support,
// so ctx is only checked before dialing.
func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	if !s.cfg.Configured() {
		return ErrMailerNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	to := s.cfg.To
	if to == "" {
		to = s.cfg.User
	}
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass.Value(), s.cfg.Host)
	msg := composeMessage(s.cfg.User, to, m)
	if err := s.send(addr, auth, s.cfg.User, []string{to}, msg); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func composeMessage(from, to string, m Message) []byte {
	name := headerSafe(m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, m.Email, m.Body)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + name + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(m.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe drops line breaks so form input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(strings.TrimSpace(s))
}
