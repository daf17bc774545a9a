package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
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

// Update saves an existing order to the database.
// Lines never change after checkout; status, location, and shipper do.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves all orders placed by the given customer.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID uint64) ([]*order.Order, error) {
	if customerID == 0 {
		return nil, errs.NewValueIsRequiredError("customer id")
	}

	return r.find(ctx, "customer_id = ?", customerID)
}

// GetByShipper retrieves all orders currently assigned to the given shipper.
func (r *GormOrderRepository) GetByShipper(ctx context.Context, shipperID uint64) ([]*order.Order, error) {
	if shipperID == 0 {
		return nil, errs.NewValueIsRequiredError("shipper id")
	}

	return r.find(ctx, "shipper_id = ?", shipperID)
}

// GetByShop retrieves all orders addressed to the given shop.
func (r *GormOrderRepository) GetByShop(ctx context.Context, shopID uint64) ([]*order.Order, error) {
	if shopID == 0 {
		return nil, errs.NewValueIsRequiredError("shop id")
	}

	return r.find(ctx, "shop_id = ?", shopID)
}

// GetClaimableInCity retrieves unassigned orders waiting in the given city,
// either at their shop or at a relay warehouse.
func (r *GormOrderRepository) GetClaimableInCity(ctx context.Context, city kernel.City) ([]*order.Order, error) {
	if err := city.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx,
		"status IN (?, ?) AND shipper_id IS NULL AND location_city = ?",
		int(order.ShopAccepted), int(order.AtWarehouse), int(city),
	)
}

// GetFirstAtWarehouse retrieves the oldest unassigned order parked at a warehouse.
func (r *GormOrderRepository) GetFirstAtWarehouse(ctx context.Context) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ? AND shipper_id IS NULL", int(order.AtWarehouse)).
		Order("id").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "at warehouse")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) find(ctx context.Context, cond string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where(cond, args...).
		Order("id").
		Find(&dtos).Error; err != nil {
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
