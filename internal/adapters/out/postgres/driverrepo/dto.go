// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	SectorID    uuid.UUID `gorm:"type:uuid;index"`
	IsAvailable bool
	IsBlocked   bool
	DeviceToken string
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		SectorID:    aggregate.SectorID().Bytes(),
		IsAvailable: aggregate.IsAvailable(),
		IsBlocked:   aggregate.IsBlocked(),
		DeviceToken: aggregate.DeviceToken(),
	}
}

// updateColumns builds the column map for driver row updates. A map is used
// so availability and block flags are written even when false.
func updateColumns(dto DriverDTO) map[string]any {
	return map[string]any{
		"name":         dto.Name,
		"sector_id":    dto.SectorID,
		"is_available": dto.IsAvailable,
		"is_blocked":   dto.IsBlocked,
		"device_token": dto.DeviceToken,
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sectorID, err := kernel.UUIDFromBytes(dto.SectorID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, sectorID, dto.IsAvailable, dto.IsBlocked, dto.DeviceToken)
}
