package notify

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"jobboard-api/config"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

// sender is satisfied by *mail.Client.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier sends HTML mail through a relay.
type SMTPNotifier struct {
	client sender
	from   string
	log    logrus.FieldLogger
}

// NewSMTPNotifier builds a notifier for the configured relay. Authentication
// is only attempted when a username is set.
func NewSMTPNotifier(cfg config.SMTPConfig, log logrus.FieldLogger) (*SMTPNotifier, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is not set")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is not set")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return newSMTPNotifier(client, cfg.From, log), nil
}

func newSMTPNotifier(client sender, from string, log logrus.FieldLogger) *SMTPNotifier {
	return &SMTPNotifier{client: client, from: from, log: log}
}

var _ Notifier = (*SMTPNotifier)(nil)

// ApplicationSubmitted mails the recruiter contact and sends the applicant an
// auto-reply whose Reply-To points back at the recruiter. A bad address only
// drops the message it belongs to; the rest are still sent and the address
// errors are returned afterwards.
func (n *SMTPNotifier) ApplicationSubmitted(ctx context.Context, a ApplicationSubmitted) error {
	msgs, buildErr := n.buildApplicationMessages(a)
	if len(msgs) == 0 {
		if buildErr == nil {
			n.log.WithField("job_title", a.JobTitle).Debug("no recipients for application notification")
		}
		return buildErr
	}

	if err := n.client.DialAndSendWithContext(ctx, msgs...); err != nil {
		return errors.Join(fmt.Errorf("failed to send application notification: %w", err), buildErr)
	}
	n.log.WithFields(logrus.Fields{
		"job_title": a.JobTitle,
		"messages":  len(msgs),
	}).Info("application notification sent")
	return buildErr
}

func (n *SMTPNotifier) buildApplicationMessages(a ApplicationSubmitted) ([]*mail.Msg, error) {
	var (
		msgs []*mail.Msg
		errs []error
	)
	log := n.log.WithField("job_title", a.JobTitle)

	if a.ContactEmail != "" {
		m, err := n.renderMessage(companyTemplate, a.ContactEmail, "New Job Application: "+a.JobTitle, a)
		if err != nil {
			errs = append(errs, err)
		} else {
			if a.ApplicantEmail != "" {
				if err := m.ReplyTo(a.ApplicantEmail); err != nil {
					log.WithError(err).Warn("dropping invalid applicant reply-to")
				}
			}
			msgs = append(msgs, m)
		}
	}

	if a.ApplicantEmail != "" {
		m, err := n.renderMessage(applicantTemplate, a.ApplicantEmail, "Application Received: "+a.JobTitle, a)
		if err != nil {
			errs = append(errs, err)
		} else {
			if a.ContactEmail != "" {
				if err := m.ReplyTo(a.ContactEmail); err != nil {
					log.WithError(err).Warn("dropping invalid contact reply-to")
				}
			}
			msgs = append(msgs, m)
		}
	}

	return msgs, errors.Join(errs...)
}

func (n *SMTPNotifier) renderMessage(tpl *template.Template, to, subject string, a ApplicationSubmitted) (*mail.Msg, error) {
	body, err := render(tpl, a)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s mail: %w", tpl.Name(), err)
	}
	return n.newMessage(to, subject, body)
}

func (n *SMTPNotifier) newMessage(to, subject, html string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(n.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, html)
	return m, nil
}
