package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer delivers plain-text notifications over SMTP. With no host
// configured it logs the message instead of sending, which keeps local
// development and tests relay-free.
type Mailer struct {
	cfg Config
	log zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

func (m *Mailer) Enabled() bool {
	return m.cfg.Host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		m.log.Info().
			Str("to", to).
			Str("subject", subject).
			Msg("smtp not configured, skipping delivery")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, compose(m.cfg.From, to, subject, body))
}

func compose(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
