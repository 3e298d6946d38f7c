// Package devicerepo resolves user identifiers to registered device tokens.
package devicerepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeviceTokenSource implements the FCM token source against the provider,
// driver, and customer device tables. Providers and drivers carry a single
// token on their own row; customers register one row per device.
type GormDeviceTokenSource struct {
	db *gorm.DB
}

// NewGormDeviceTokenSource creates a new GORM device token source.
func NewGormDeviceTokenSource(db *gorm.DB) *GormDeviceTokenSource {
	return &GormDeviceTokenSource{db: db}
}

// TokensFor retrieves the non-empty device tokens registered to the given
// users. Users without a device simply contribute nothing.
func (s *GormDeviceTokenSource) TokensFor(ctx context.Context, userIDs []kernel.UUID) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	rows, err := s.db.WithContext(ctx).Raw(
		`SELECT device_token FROM providers WHERE id IN ? AND device_token <> ''
		 UNION
		 SELECT device_token FROM drivers WHERE id IN ? AND device_token <> ''
		 UNION
		 SELECT device_token FROM customer_devices WHERE customer_id IN ? AND device_token <> ''`,
		raw, raw, raw,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, rows.Err()
}
