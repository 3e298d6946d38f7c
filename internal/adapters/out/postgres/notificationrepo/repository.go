package notificationrepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add stores a delivered notification row per recipient. Topic-only
// broadcasts have no recipient rows and are not persisted to the feed.
func (r *GormNotificationRepository) Add(ctx context.Context, notification ports.Notification) error {
	if err := notification.ID.Validate(); err != nil {
		return err
	}

	rows, err := fromPort(notification)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

// GetByRecipient retrieves the recipient's notification feed, newest first.
func (r *GormNotificationRepository) GetByRecipient(
	ctx context.Context,
	userID kernel.UUID,
) ([]ports.Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "recipient_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]ports.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toPort(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
