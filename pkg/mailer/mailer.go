package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"textile-store/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends transactional mail over SMTP. Delivery is best effort;
// callers log failures and carry on.
type Mailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		config: config,
		log:    log.With(zap.String("component", "mailer")),
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var msg strings.Builder
	msg.WriteString("From: " + m.config.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg.String())); err != nil {
		m.log.Error("Failed to send mail",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

func (m *Mailer) SendVerificationEmail(to, link string) error {
	body := fmt.Sprintf(
		`<p>Welcome! Please verify your email address by clicking the link below.</p>
<p><a href="%s">Verify email</a></p>
<p>The link is valid for 24 hours.</p>`, link)
	return m.Send(to, "Verify your email", body)
}

func (m *Mailer) SendResetEmail(to, link string) error {
	body := fmt.Sprintf(
		`<p>A password reset was requested for your account.</p>
<p><a href="%s">Reset password</a></p>
<p>The link is valid for 1 hour. If you did not request this, ignore this mail.</p>`, link)
	return m.Send(to, "Reset your password", body)
}
