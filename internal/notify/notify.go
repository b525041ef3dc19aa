package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ApplicationSubmitted carries what both submission mails need.
type ApplicationSubmitted struct {
	JobTitle       string
	CompanyName    string
	ContactEmail   string // recruiter side; empty skips the company mail
	ApplicantName  string
	ApplicantEmail string // empty skips the auto-reply
	CoverLetter    string
}

// Notifier delivers best-effort notifications. Callers log and discard errors.
type Notifier interface {
	ApplicationSubmitted(ctx context.Context, n ApplicationSubmitted) error
}

// LogNotifier records notifications instead of sending them.
type LogNotifier struct {
	log logrus.FieldLogger
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

var _ Notifier = (*LogNotifier)(nil)

func (n *LogNotifier) ApplicationSubmitted(_ context.Context, a ApplicationSubmitted) error {
	n.log.WithFields(logrus.Fields{
		"job_title":       a.JobTitle,
		"contact_email":   a.ContactEmail,
		"applicant_email": a.ApplicantEmail,
	}).Info("smtp disabled; application notification not sent")
	return nil
}
