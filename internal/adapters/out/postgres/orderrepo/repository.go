package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AggregateType is the outbox aggregate type of orders.
const AggregateType = "Order"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregateType, aggregateID string, aggregate kernel.EventRecorder)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save inserts a new order and assigns its id, or rewrites an existing one.
// Line items are replaced as a whole because they have no identity of their own.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	var err error
	if _, hasID := aggregate.ID(); hasID {
		err = r.update(ctx, aggregate)
	} else {
		err = r.insert(ctx, aggregate)
	}
	if err != nil {
		return nil, err
	}

	id, _ := aggregate.ID()
	r.tracker.TrackAggregate(AggregateType, strconv.FormatInt(id.Value(), 10), aggregate)
	return aggregate, nil
}

func (r *GormOrderRepository) insert(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := order.NewOrderID(dto.ID)
	if err != nil {
		return err
	}
	return aggregate.AssignID(id)
}

func (r *GormOrderRepository) update(ctx context.Context, aggregate *order.Order) error {
	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{ID: dto.ID}).
		Select("*").
		Omit("id", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.LineItems) == 0 {
		return nil
	}
	return db.Create(&dto.LineItems).Error
}

// FindByID loads the order with its children and takes a row lock on the order
// that is held until the surrounding transaction ends.
func (r *GormOrderRepository) FindByID(ctx context.Context, id order.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("LineItems", byPosition).
		Preload("LineItems.BundleComponents", byPosition).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order row; line items and bundle components follow by cascade.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id, ok := aggregate.ID()
	if !ok {
		return errs.NewValueIsRequiredError("order id")
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.Value())
	}
	return nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
