package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/metrics"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Publisher delivers a committed notification to its receiver.
type Publisher interface {
	Publish(ctx context.Context, n models.Notification) error
}

const publishTimeout = 5 * time.Second

// Dispatcher delivers notifications off the request path. Delivery is best
// effort: a full queue drops the notification and publish errors are logged.
type Dispatcher struct {
	publisher Publisher
	queue     chan models.Notification
	logger    *zerolog.Logger
	metrics   *metrics.Collector

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(p Publisher, size int, logger *zerolog.Logger, m *metrics.Collector) *Dispatcher {
	if size < 1 {
		size = 1
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	d := &Dispatcher{
		publisher: p,
		queue:     make(chan models.Notification, size),
		logger:    logger,
		metrics:   m,
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for n := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := d.publisher.Publish(ctx, n)
		cancel()

		d.metrics.ObserveDelivery(err)
		if err != nil {
			d.logger.Warn().
				Err(err).
				Uint("notification_id", n.ID).
				Uint("receiver_id", n.ReceiverID).
				Msg("notification delivery failed")
		}
	}
}

// Dispatch never blocks.
func (d *Dispatcher) Dispatch(notifications ...models.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	for _, n := range notifications {
		select {
		case d.queue <- n:
		default:
			d.metrics.IncDropped()
			d.logger.Warn().
				Uint("notification_id", n.ID).
				Msg("notification queue full, dropping delivery")
		}
	}
}

// Close stops accepting notifications and waits for the queue to drain or
// ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
