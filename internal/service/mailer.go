package service

import (
	"github.com/kapu/youtube-growth-monitor/internal/adapter"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// Mailer sends the monitoring reports over SMTP. Delivery failures are
// logged and swallowed: a lost email must never abort a monitoring run.
type Mailer struct {
	dialer    *gomail.Dialer
	from      string
	recipient string
	logger    *zap.Logger
}

type MailerConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	Recipient string
}

func NewMailer(cfg MailerConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:      cfg.User,
		recipient: cfg.Recipient,
		logger:    logger,
	}
}

// Send delivers one rendered email. Returns best-effort only.
func (m *Mailer) Send(email *adapter.Email) {
	if email == nil || m.recipient == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/html", email.Body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("Email delivery failed",
			zap.String("subject", email.Subject),
			zap.Error(err))
		return
	}

	m.logger.Info("Email sent", zap.String("subject", email.Subject))
}
