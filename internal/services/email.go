package services

import (
	"context"
	"fmt"
	"log/slog"

	"activitysignup/internal/domain"
)

type notificationService struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewNotificationService returns a NotificationService that uses the given Mailer and template renderer.
func NewNotificationService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.NotificationService {
	return &notificationService{logger: logger, mailer: mailer, renderer: renderer}
}

// SendSignupConfirmation sends the "signup_confirmation" email.
func (s *notificationService) SendSignupConfirmation(ctx context.Context, data *domain.ParticipantEmailData) error {
	return s.send(ctx, "signup_confirmation", data)
}

// SendUnregisterConfirmation sends the "unregister_confirmation" email.
func (s *notificationService) SendUnregisterConfirmation(ctx context.Context, data *domain.ParticipantEmailData) error {
	return s.send(ctx, "unregister_confirmation", data)
}

func (s *notificationService) send(ctx context.Context, templateName string, data *domain.ParticipantEmailData) error {
	if data == nil {
		return fmt.Errorf("%s data is nil", templateName)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	s.logger.DebugContext(ctx, "email sent", "template", templateName, "to", data.Email)
	return nil
}
