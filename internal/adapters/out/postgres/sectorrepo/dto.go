// Package sectorrepo provides data transfer objects and mapping functions for sector persistence.
// This package implements the repository pattern for the sector domain aggregate, handling
// the conversion between domain entities and database representations.
package sectorrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/sector"

	"github.com/google/uuid"
)

// SectorDTO represents the database structure for persisting sector aggregates.
// The boundary polygon is stored as ordered vertex rows in a child table.
type SectorDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	DeliveryFee float64
	IsActive    bool

	Vertices []VertexDTO `gorm:"foreignKey:SectorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for sector entities.
// Overrides GORM's default naming convention to use "sectors".
func (SectorDTO) TableName() string {
	return "sectors"
}

// VertexDTO represents a single boundary vertex. Position preserves the ring
// order; the last vertex implicitly connects back to the first.
type VertexDTO struct {
	SectorID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position int       `gorm:"primaryKey"`
	Lat      float64
	Lng      float64
}

// TableName specifies the database table name for sector boundary vertices.
func (VertexDTO) TableName() string {
	return "sector_vertices"
}

// fromDomain converts a sector domain aggregate to its database representation.
func fromDomain(aggregate *sector.Sector) SectorDTO {
	sectorID := aggregate.ID().Bytes()

	boundary := aggregate.Boundary().Vertices()
	vertices := make([]VertexDTO, 0, len(boundary))
	for i, v := range boundary {
		vertices = append(vertices, VertexDTO{
			SectorID: sectorID,
			Position: i,
			Lat:      v.Lat(),
			Lng:      v.Lng(),
		})
	}

	return SectorDTO{
		ID:          sectorID,
		Name:        aggregate.Name(),
		DeliveryFee: aggregate.DeliveryFee(),
		IsActive:    aggregate.IsActive(),
		Vertices:    vertices,
	}
}

// toDomain converts a database DTO to a sector domain aggregate.
// Vertex rows must already be sorted by position.
func toDomain(dto SectorDTO) (*sector.Sector, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	points := make([]kernel.Point, 0, len(dto.Vertices))
	for _, v := range dto.Vertices {
		point, pErr := kernel.NewPoint(v.Lat, v.Lng)
		if pErr != nil {
			return nil, pErr
		}
		points = append(points, point)
	}

	boundary, err := kernel.NewPolygon(points)
	if err != nil {
		return nil, err
	}

	return sector.RestoreSector(id, dto.Name, boundary, dto.DeliveryFee, dto.IsActive)
}
