package services

import (
	"context"
	"fmt"
	"log/slog"

	"activitysignup/internal/domain"
)

type activityService struct {
	logger        *slog.Logger
	repo          domain.ActivityRepository
	notifications domain.NotificationService
}

// NewActivityService creates an ActivityService over the given registry. notifications
// may be nil, in which case no emails are sent.
func NewActivityService(
	logger *slog.Logger,
	repo domain.ActivityRepository,
	notifications domain.NotificationService,
) domain.ActivityService {
	return &activityService{
		logger:        logger,
		repo:          repo,
		notifications: notifications,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (domain.Catalog, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	if catalog == nil {
		catalog = domain.Catalog{}
	}
	return catalog, nil
}

func (s *activityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		return "", fmt.Errorf("signup %q: %w", activityName, err)
	}
	s.logger.InfoContext(ctx, "participant signed up", "activity", activityName, "email", email)

	if s.notifications != nil {
		data := s.emailData(ctx, activityName, email)
		if err := s.notifications.SendSignupConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "signup confirmation not sent", "activity", activityName, "email", email, "err", err)
		}
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *activityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		return "", fmt.Errorf("unregister %q: %w", activityName, err)
	}
	s.logger.InfoContext(ctx, "participant unregistered", "activity", activityName, "email", email)

	if s.notifications != nil {
		data := s.emailData(ctx, activityName, email)
		if err := s.notifications.SendUnregisterConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "unregister confirmation not sent", "activity", activityName, "email", email, "err", err)
		}
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// emailData looks up the schedule for the email body. A failed lookup only drops the schedule.
func (s *activityService) emailData(ctx context.Context, activityName, email string) *domain.ParticipantEmailData {
	data := &domain.ParticipantEmailData{Email: email, ActivityName: activityName}
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return data
	}
	if a := catalog.Get(activityName); a != nil {
		data.Schedule = a.Schedule
	}
	return data
}
