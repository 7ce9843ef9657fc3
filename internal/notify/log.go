package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// LogPublisher is the delivery fallback when no Redis is configured.
type LogPublisher struct {
	logger *zerolog.Logger
}

func NewLogPublisher(logger *zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, n models.Notification) error {
	p.logger.Info().
		Uint("notification_id", n.ID).
		Uint("receiver_id", n.ReceiverID).
		Str("type", n.Type).
		Str("message", n.Message).
		Msg("notification delivered")
	return nil
}
