// Package providerrepo provides data transfer objects and mapping functions for provider persistence.
package providerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/provider"

	"github.com/google/uuid"
)

// ProviderDTO represents the database structure for persisting provider aggregates.
type ProviderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	SectorID    uuid.UUID `gorm:"type:uuid;index"`
	IsAvailable bool
	IsBlocked   bool
	DeviceToken string
}

// TableName specifies the database table name for provider entities.
func (ProviderDTO) TableName() string {
	return "providers"
}

// fromDomain converts a provider domain aggregate to its database representation.
func fromDomain(aggregate *provider.Provider) ProviderDTO {
	return ProviderDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		SectorID:    aggregate.SectorID().Bytes(),
		IsAvailable: aggregate.IsAvailable(),
		IsBlocked:   aggregate.IsBlocked(),
		DeviceToken: aggregate.DeviceToken(),
	}
}

// updateColumns builds the column map for provider row updates. A map is used
// so availability and block flags are written even when false.
func updateColumns(dto ProviderDTO) map[string]any {
	return map[string]any{
		"name":         dto.Name,
		"sector_id":    dto.SectorID,
		"is_available": dto.IsAvailable,
		"is_blocked":   dto.IsBlocked,
		"device_token": dto.DeviceToken,
	}
}

// toDomain converts a database DTO to a provider domain aggregate.
func toDomain(dto ProviderDTO) (*provider.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sectorID, err := kernel.UUIDFromBytes(dto.SectorID[:])
	if err != nil {
		return nil, err
	}

	return provider.RestoreProvider(id, dto.Name, sectorID, dto.IsAvailable, dto.IsBlocked, dto.DeviceToken)
}
