package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/Sreejan-22/Memes4u/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether the sender has enough configuration to send.
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != "" && s.cfg.AdminEmail != ""
}

// SendSignupNotification notifies the admin address about a new account.
func (s *Sender) SendSignupNotification(name, username string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.AdminEmail}
	e.Subject = "New Memes4u signup"

	body := fmt.Sprintf(
		"A new user signed up at %s.\n\nName: %s\nUsername: %s\n",
		time.Now().Format(time.RFC1123), name, username,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send signup notification: %w", err)
	}

	s.logger.Infof("Signup notification sent for %s", username)
	return nil
}
