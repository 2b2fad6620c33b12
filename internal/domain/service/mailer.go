package service

import "context"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Mailer defines the interface for outgoing mail. Contact mail is
// best-effort: callers log failures and still report success to the client.
type Mailer interface {
	// SendContactNotification forwards the submission to the admin inbox.
	SendContactNotification(ctx context.Context, msg *ContactMessage) error

	// SendContactConfirmation acknowledges the submission to the sender.
	SendContactConfirmation(ctx context.Context, msg *ContactMessage) error

	// Enabled reports whether a transport is configured.
	Enabled() bool
}
