// Package notify sends best-effort applicant notifications. Failures are
// logged by callers and never surfaced to the reviewer who triggered them.
package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"hireboard_backend/internal/models"
)

type StatusChange struct {
	To            string
	ApplicantName string
	JobTitle      string
	Status        models.ApplicationStatus
}

type Notifier interface {
	StatusChanged(change StatusChange) error
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	config SMTPConfig
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		config: cfg,
	}
}

func (n *SMTPNotifier) StatusChanged(change StatusChange) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.config.FromEmail, n.config.FromName)
	m.SetHeader("To", change.To)
	m.SetHeader("Subject", fmt.Sprintf("Update on your application for %s", change.JobTitle))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour application for %s is now: %s.\n",
		change.ApplicantName, change.JobTitle, statusLabel(change.Status),
	))
	return n.dialer.DialAndSend(m)
}

func statusLabel(s models.ApplicationStatus) string {
	switch s {
	case models.ApplicationStatusUnderReview:
		return "under review"
	default:
		return string(s)
	}
}

// NoopNotifier is used when SMTP is not configured.
type NoopNotifier struct{}

func (NoopNotifier) StatusChanged(StatusChange) error { return nil }
