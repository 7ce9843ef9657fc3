package notify

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// Emitter turns booking effects into persisted notification records.
type Emitter struct {
	clock timezone.Clock
}

func NewEmitter(clock timezone.Clock) *Emitter {
	return &Emitter{clock: clock}
}

// Emit appends one unread notification per effect through w. Callers pass the
// transactional writer so records commit together with the booking.
func (e *Emitter) Emit(ctx context.Context, w notification.Writer, effects []booking.Effect) ([]models.Notification, error) {
	out := make([]models.Notification, 0, len(effects))

	for _, ef := range effects {
		n := models.Notification{
			ReceiverID: ef.ReceiverID,
			Message:    ef.Message,
			Type:       string(ef.Type),
			Date:       e.clock.Now(),
			IsRead:     false,
		}
		if err := w.CreateNotification(ctx, &n); err != nil {
			return nil, fmt.Errorf("create notification for %d: %w", ef.ReceiverID, err)
		}
		out = append(out, n)
	}

	return out, nil
}
