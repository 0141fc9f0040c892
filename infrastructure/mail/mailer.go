package mail

import (
	"fmt"
	"html"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"

	"gopkg.in/gomail.v2"
)

// Mailer relays contact-form submissions to the site owner over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

func NewMailer(cfg Config) repository.IMailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
		to:     cfg.To,
	}
}

func (mailer *Mailer) SendContact(msg *model.ContactMessage) error {
	m := gomail.NewMessage()
	m.SetHeader("From", mailer.from)
	m.SetHeader("To", mailer.to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("New contact from %s", msg.Name))
	m.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))
	m.AddAlternative("text/html", fmt.Sprintf(
		"<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Message),
	))

	if err := mailer.dialer.DialAndSend(m); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending contact mail")
		return err
	}
	logger.GetLogger().WithField("from", msg.Email).Info("Contact mail relayed")
	return nil
}
