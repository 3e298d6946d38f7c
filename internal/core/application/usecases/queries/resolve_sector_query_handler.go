package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/sector"
	"dispatch/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveSectorQueryHandler resolves a coordinate to its serving sector.
// Unlike the other read paths this one rebuilds domain sectors from their
// rows, because containment is the polygon's business, not SQL's.
type ResolveSectorQueryHandler struct {
	db       *gorm.DB
	resolver services.SectorResolver
}

// NewResolveSectorQueryHandler creates a handler for sector resolution queries.
func NewResolveSectorQueryHandler(db *gorm.DB) ResolveSectorQueryHandler {
	return ResolveSectorQueryHandler{db: db}
}

// Handle executes the query. Returns services.ErrSectorNotFound when no
// active sector contains the point.
func (h ResolveSectorQueryHandler) Handle(
	ctx context.Context,
	query ResolveSectorQuery,
) (ResolveSectorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ResolveSectorQueryResponse{}, err
	}

	sectors, err := h.loadSectors(ctx)
	if err != nil {
		return ResolveSectorQueryResponse{}, err
	}

	serving, err := h.resolver.Resolve(query.Point(), sectors)
	if err != nil {
		return ResolveSectorQueryResponse{}, err
	}

	return ResolveSectorQueryResponse{
		ID:          serving.ID(),
		Name:        serving.Name(),
		DeliveryFee: serving.DeliveryFee(),
	}, nil
}

func (h ResolveSectorQueryHandler) loadSectors(ctx context.Context) ([]*sector.Sector, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.delivery_fee,
			s.is_active,
			v.lat,
			v.lng
		FROM sectors s
		JOIN sector_vertices v ON v.sector_id = s.id
		ORDER BY s.id, v.position
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type sectorRow struct {
		name        string
		deliveryFee float64
		isActive    bool
		vertices    []kernel.Point
	}

	grouped := make(map[kernel.UUID]*sectorRow)
	ordered := make([]kernel.UUID, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			name        string
			deliveryFee float64
			isActive    bool
			lat, lng    float64
		)
		if err = rows.Scan(&id, &name, &deliveryFee, &isActive, &lat, &lng); err != nil {
			return nil, err
		}

		sectorID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		point, err := kernel.NewPoint(lat, lng)
		if err != nil {
			return nil, err
		}

		row, ok := grouped[sectorID]
		if !ok {
			row = &sectorRow{name: name, deliveryFee: deliveryFee, isActive: isActive}
			grouped[sectorID] = row
			ordered = append(ordered, sectorID)
		}
		row.vertices = append(row.vertices, point)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	sectors := make([]*sector.Sector, 0, len(ordered))
	for _, id := range ordered {
		row := grouped[id]

		boundary, err := kernel.NewPolygon(row.vertices)
		if err != nil {
			return nil, err
		}

		restored, err := sector.RestoreSector(id, row.name, boundary, row.deliveryFee, row.isActive)
		if err != nil {
			return nil, err
		}
		sectors = append(sectors, restored)
	}

	return sectors, nil
}
