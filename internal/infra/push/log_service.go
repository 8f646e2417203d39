package push

import (
	"context"
	"log/slog"

	"pureflow/internal/domain/service"
)

// logService is the push sink when Firebase is not configured: toasts go to
// the log so the fan-out path stays observable in development.
type logService struct {
	logger *slog.Logger
}

// NewLogService returns a push service that only logs.
func NewLogService(logger *slog.Logger) service.PushService {
	return &logService{logger: logger}
}

func (s *logService) SendToast(_ context.Context, title, body string, data map[string]string) error {
	s.logger.Info("toast",
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
