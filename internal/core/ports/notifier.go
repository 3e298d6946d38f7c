package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Notification is a push message addressed either to a broadcast topic or to
// a set of individual recipients. Exactly one of Topic and Recipients should
// be set; when both are present the topic wins.
type Notification struct {
	ID         kernel.UUID
	Topic      string
	Recipients []kernel.UUID
	Title      string
	Body       string

	// Data carries machine-readable context for the client app,
	// such as the order identifier and the event kind.
	Data map[string]string

	CreatedAt time.Time
}

// Notifier delivers a notification to its recipients. Implementations talk
// to the push gateway; delivery is best effort and failures must not affect
// the business transaction that produced the notification.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// NotificationEnqueuer hands a notification to the asynchronous fan-out
// pipeline. Enqueue never blocks the caller; when the pipeline is saturated
// the notification is dropped and the drop is logged.
type NotificationEnqueuer interface {
	Enqueue(notification Notification)
}

// NotificationRepository persists the notification feed shown to users.
type NotificationRepository interface {
	// Add stores a delivered notification row per recipient.
	Add(ctx context.Context, notification Notification) error

	// GetByRecipient retrieves the recipient's notification feed,
	// newest first.
	GetByRecipient(ctx context.Context, userID kernel.UUID) ([]Notification, error)
}
