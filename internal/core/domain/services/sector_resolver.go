package services

import (
	"errors"
	"sort"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/sector"
)

// ErrSectorNotFound is returned when no active sector contains the given
// delivery point. Orders to such addresses cannot be placed.
var ErrSectorNotFound = errors.New("sector not found")

// SectorResolver is a domain service that maps a delivery point to the sector
// serving it. The resolved sector determines the order's delivery fee and the
// pool of providers and drivers that will be notified.
//
// Business rules:
//   - Only active sectors participate in resolution
//   - When sector polygons overlap, the match with the smallest identifier
//     wins, so resolution is deterministic for a given sector set
//   - A point outside every active sector is an ErrSectorNotFound
//
// Example usage:
//
//	resolver := NewSectorResolver()
//	point, _ := kernel.NewPoint(33.5, 36.3)
//
//	match, err := resolver.Resolve(point, sectors)
//	if errors.Is(err, ErrSectorNotFound) {
//	    // Address is outside the service area
//	    return
//	}
type SectorResolver struct{}

// NewSectorResolver creates a new SectorResolver instance.
func NewSectorResolver() SectorResolver {
	return SectorResolver{}
}

// Resolve returns the sector serving the given delivery point.
//
// Parameters:
//   - point: The delivery location (must be a constructed kernel.Point)
//   - sectors: The candidate sectors, typically every sector in the system
//
// Returns:
//   - *sector.Sector: The first active sector containing the point, in
//     ascending identifier order
//   - error: ErrSectorNotFound if no active sector contains the point, or
//     validation errors from malformed inputs
func (r SectorResolver) Resolve(point kernel.Point, sectors []*sector.Sector) (*sector.Sector, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]*sector.Sector, len(sectors))
	copy(candidates, sectors)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID().String() < candidates[j].ID().String()
	})

	for _, s := range candidates {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		if !s.IsActive() {
			continue
		}

		inside, err := s.Contains(point)
		if err != nil {
			return nil, err
		}

		if inside {
			return s, nil
		}
	}

	return nil, ErrSectorNotFound
}
