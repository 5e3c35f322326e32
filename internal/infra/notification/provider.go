package notification

import (
	"context"
	"log/slog"

	"handloom/config"
	"handloom/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService returns the Firebase sender, or a logging no-op when FCM is not configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopService{logger: params.Logger}, nil
	}

	svc, err := NewFirebaseService(params.Ctx, cfg.ProjectID, cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Firebase messaging initialized", slog.String("project_id", cfg.ProjectID))

	return svc, nil
}

// noopService reports every token as delivered.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendSingleNotification(_ context.Context, _ string, title, _ string, _ map[string]string) error {
	s.logger.Debug("[NoopNotification] Skipping push", slog.String("title", title))

	return nil
}

func (s *noopService) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopNotification] Skipping batch push",
		slog.String("title", title),
		slog.Int("token_count", len(tokens)),
	)

	return len(tokens), 0, nil, nil
}
