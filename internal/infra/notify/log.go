package notify

import (
	"context"
	"log/slog"

	"macondo-backend/internal/usecase/shared"
)

// LogDispatcher records messages instead of sending them. Used when no mail token is configured.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(_ context.Context, email shared.Email) error {
	d.logger.Info("email not sent (no mail provider configured)",
		"to", email.ToAddress,
		"subject", email.Subject)
	return nil
}
