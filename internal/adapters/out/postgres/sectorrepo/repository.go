package sectorrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/sector"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSectorRepository implements SectorRepository using GORM.
type GormSectorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSectorRepository creates a new GORM sector repository.
func NewGormSectorRepository(db *gorm.DB, tracker aggregateTracker) *GormSectorRepository {
	return &GormSectorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sector with its boundary vertices to the database.
func (r *GormSectorRepository) Add(ctx context.Context, aggregate *sector.Sector) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing sector to the database. The boundary vertex rows
// are replaced so a redrawn boundary never leaves stale vertices behind.
func (r *GormSectorRepository) Update(ctx context.Context, aggregate *sector.Sector) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SectorDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":         dto.Name,
			"delivery_fee": dto.DeliveryFee,
			"is_active":    dto.IsActive,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&VertexDTO{}, "sector_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto.Vertices).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a sector with its boundary by ID.
func (r *GormSectorRepository) Get(ctx context.Context, id kernel.UUID) (*sector.Sector, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SectorDTO
	err := r.db.WithContext(ctx).
		Preload("Vertices", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sector", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every sector, active and inactive, ordered by ID so the
// resolver's first-match rule sees a stable candidate order.
func (r *GormSectorRepository) GetAll(ctx context.Context) ([]*sector.Sector, error) {
	var dtos []SectorDTO
	err := r.db.WithContext(ctx).
		Preload("Vertices", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	sectors := make([]*sector.Sector, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sectors = append(sectors, s)
	}

	return sectors, nil
}
