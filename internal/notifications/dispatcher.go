// Package notifications runs the asynchronous notification fan-out pipeline.
//
// Command handlers enqueue notifications after their transaction commits; a
// background worker delivers them through the push gateway and records them
// in the per-user feed. Delivery is best effort: a full queue drops the
// notification, and delivery failures are logged, never surfaced to the
// request that produced them.
package notifications

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/ports"
)

const deliveryTimeout = 30 * time.Second

// Dispatcher implements NotificationEnqueuer with a buffered queue drained
// by a single background worker.
type Dispatcher struct {
	queue    chan ports.Notification
	notifier ports.Notifier
	feed     ports.NotificationRepository
	logger   *slog.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher creates a dispatcher with the given queue capacity and
// starts its worker. Call Close during shutdown to drain the queue.
func NewDispatcher(
	notifier ports.Notifier,
	feed ports.NotificationRepository,
	logger *slog.Logger,
	queueSize int,
) *Dispatcher {
	d := &Dispatcher{
		queue:    make(chan ports.Notification, queueSize),
		notifier: notifier,
		feed:     feed,
		logger:   logger,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Enqueue hands a notification to the worker without blocking. When the
// queue is saturated the notification is dropped and the drop is logged;
// push delivery is not worth stalling a request over.
func (d *Dispatcher) Enqueue(notification ports.Notification) {
	select {
	case d.queue <- notification:
	default:
		d.logger.Warn("notification queue full, dropping",
			"notification_id", notification.ID.String(),
			"topic", notification.Topic,
			"recipients", len(notification.Recipients))
	}
}

// Close stops accepting notifications, waits for the worker to drain the
// queue, and returns. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for notification := range d.queue {
		d.deliver(notification)
	}
}

func (d *Dispatcher) deliver(notification ports.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := d.notifier.Notify(ctx, notification); err != nil {
		d.logger.Error("notification delivery failed",
			"notification_id", notification.ID.String(),
			"error", err)
	}

	if err := d.feed.Add(ctx, notification); err != nil {
		d.logger.Error("notification feed write failed",
			"notification_id", notification.ID.String(),
			"error", err)
	}
}
