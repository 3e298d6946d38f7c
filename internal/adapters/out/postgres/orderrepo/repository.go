package orderrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// inProgressStatuses are the statuses that count against the
// one-active-order-per-driver rule.
var inProgressStatuses = []string{
	order.Accepted.String(),
	order.OnTheWayProvider.String(),
	order.OnTheWayCustomer.String(),
}

// GormOrderRepository implements OrderRepository using GORM.
// The conditional update methods back the claim protocol: the status
// precondition goes into the UPDATE's WHERE clause, so the database decides
// the race and RowsAffected reports the outcome.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database unconditionally.
// Line items are immutable and never updated.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(updateColumns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateIfStatus saves the order only if the stored row still holds the
// expected status. Returns false when a concurrent writer moved the order
// first; the caller's transaction then has nothing to commit.
func (r *GormOrderRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(updateColumns(dto))
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// UpdateIfUnrated saves the order only if the stored row carries no rating
// yet. Two concurrent review requests race on the precondition and at most
// one lands.
func (r *GormOrderRepository) UpdateIfUnrated(
	ctx context.Context,
	aggregate *order.Order,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND rating IS NULL", dto.ID).
		Updates(updateColumns(dto))
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// ClaimForDriver saves a driver claim only if the stored row still holds the
// expected status and the claiming driver has no other in-progress order.
// Claims are serialized per driver with an advisory lock: the NOT EXISTS
// check alone is not enough, because two concurrent claims by the same
// driver on different orders update disjoint rows and neither statement's
// snapshot would see the other's uncommitted claim.
func (r *GormOrderRepository) ClaimForDriver(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	if dto.DriverID == nil {
		return false, errs.NewValueIsRequiredError("driver")
	}

	claimed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))", dto.DriverID.String(),
		).Error; err != nil {
			return err
		}

		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND status = ?", dto.ID, expected.String()).
			Where(
				"NOT EXISTS (SELECT 1 FROM orders active WHERE active.driver_id = ? AND active.status IN ?)",
				*dto.DriverID, inProgressStatuses,
			).
			Updates(updateColumns(dto))
		if result.Error != nil {
			return result.Error
		}

		claimed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if !claimed {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByDriver retrieves the driver's current in-progress order.
func (r *GormOrderRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*order.Order, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "driver_id = ? AND status IN ?", driverID.Bytes(), inProgressStatuses).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active order for driver", driverID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStalePendingProvider retrieves immediate orders that have been waiting
// for a provider claim since before the cutoff. Scheduled orders are skipped;
// they are not urgent by definition.
func (r *GormOrderRepository) GetStalePendingProvider(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Find(&dtos, "status = ? AND immediate AND order_date < ?", order.PendingProvider.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
