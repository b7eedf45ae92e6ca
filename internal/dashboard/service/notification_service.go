package service

import (
	"context"

	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/notifier"
)

// NotificationService is the notification boundary of the dashboard core.
type NotificationService interface {
	// Notify never fails; sink errors are logged.
	Notify(ctx context.Context, title, message string)
	Recent(limit int) []notifier.Notification
	Clear()
}

// NewNotificationService always writes to the log and the in-memory history. Optional sinks are
// keyed by alert method and only used when that method is selected in the persisted settings.
func NewNotificationService(settings repository.SettingsRepository, history *notifier.MemoryNotifier, optional map[string]notifier.Notifier, log *logger.Logger) NotificationService {
	if optional == nil {
		optional = map[string]notifier.Notifier{}
	}
	return &notificationService{
		settings: settings,
		always:   []notifier.Notifier{notifier.NewLogNotifier(log), history},
		history:  history,
		optional: optional,
		logger:   log,
	}
}

type notificationService struct {
	settings repository.SettingsRepository
	always   []notifier.Notifier
	history  *notifier.MemoryNotifier
	optional map[string]notifier.Notifier
	logger   *logger.Logger
}

func (s *notificationService) Notify(ctx context.Context, title, message string) {
	n := notifier.New(title, message)
	for _, sink := range s.always {
		if err := sink.Notify(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "Failed to deliver notification", logger.ErrorField(err), logger.StringField("title", title))
		}
	}

	if len(s.optional) == 0 {
		return
	}
	methods, err := s.settings.GetAlertMethods(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load alert methods", logger.ErrorField(err))
		return
	}
	for _, method := range methods {
		if method == common.AlertMethodInApp {
			continue
		}
		sink, ok := s.optional[method]
		if !ok {
			continue
		}
		if err := sink.Notify(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "Failed to deliver notification",
				logger.ErrorField(err), logger.StringField("method", method), logger.StringField("title", title))
		}
	}
}

func (s *notificationService) Recent(limit int) []notifier.Notification {
	return s.history.Recent(limit)
}

func (s *notificationService) Clear() {
	s.history.Clear()
}
