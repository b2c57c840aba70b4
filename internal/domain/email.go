package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ParticipantEmailData holds data for roster change emails.
type ParticipantEmailData struct {
	Email        string
	ActivityName string
	Schedule     string
}

// NotificationService sends participant-facing emails about roster changes.
type NotificationService interface {
	SendSignupConfirmation(ctx context.Context, data *ParticipantEmailData) error
	SendUnregisterConfirmation(ctx context.Context, data *ParticipantEmailData) error
}
