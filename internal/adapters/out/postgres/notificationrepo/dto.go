// Package notificationrepo persists the per-user notification feed.
package notificationrepo

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
)

// NotificationDTO represents one delivered notification for one recipient.
// A fan-out to N recipients stores N rows sharing the notification ID.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Topic       string
	Title       string
	Body        string
	Data        []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromPort converts a notification to its per-recipient database rows.
func fromPort(notification ports.Notification) ([]NotificationDTO, error) {
	data, err := json.Marshal(notification.Data)
	if err != nil {
		return nil, err
	}

	rows := make([]NotificationDTO, 0, len(notification.Recipients))
	for _, recipient := range notification.Recipients {
		rows = append(rows, NotificationDTO{
			ID:          notification.ID.Bytes(),
			RecipientID: recipient.Bytes(),
			Topic:       notification.Topic,
			Title:       notification.Title,
			Body:        notification.Body,
			Data:        data,
			CreatedAt:   notification.CreatedAt,
		})
	}

	return rows, nil
}

// toPort converts a database row back to a single-recipient notification.
func toPort(dto NotificationDTO) (ports.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Notification{}, err
	}

	recipient, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return ports.Notification{}, err
	}

	var data map[string]string
	if len(dto.Data) > 0 {
		if err := json.Unmarshal(dto.Data, &data); err != nil {
			return ports.Notification{}, err
		}
	}

	return ports.Notification{
		ID:         id,
		Topic:      dto.Topic,
		Recipients: []kernel.UUID{recipient},
		Title:      dto.Title,
		Body:       dto.Body,
		Data:       data,
		CreatedAt:  dto.CreatedAt,
	}, nil
}
