package shoprepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB, tracker aggregateTracker) *GormShopRepository {
	return &GormShopRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shop to the database.
func (r *GormShopRepository) Add(ctx context.Context, aggregate *shop.Shop) error {
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

// Update saves an existing shop to the database.
// Stock rows are replaced wholesale so delisted items disappear from the
// child table along with the aggregate.
func (r *GormShopRepository) Update(ctx context.Context, aggregate *shop.Shop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Where("shop_id = ?", dto.ID).Delete(&StockItemDTO{}).Error; err != nil {
		return err
	}

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

// Get retrieves a shop by ID, including its stock.
func (r *GormShopRepository) Get(ctx context.Context, id uint64) (*shop.Shop, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("shop id")
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).Preload("Stock").First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByStockItem retrieves the shop holding the given stock item.
func (r *GormShopRepository) GetByStockItem(ctx context.Context, stockItemID uint64) (*shop.Shop, error) {
	if stockItemID == 0 {
		return nil, errs.NewValueIsRequiredError("stock item id")
	}

	var itemDTO StockItemDTO
	if err := r.db.WithContext(ctx).First(&itemDTO, "id = ?", stockItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock item", stockItemID)
		}
		return nil, err
	}

	return r.Get(ctx, itemDTO.ShopID)
}

// GetAll retrieves every shop with its stock.
func (r *GormShopRepository) GetAll(ctx context.Context) ([]*shop.Shop, error) {
	var dtos []ShopDTO
	if err := r.db.WithContext(ctx).Preload("Stock").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	shops := make([]*shop.Shop, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}

	return shops, nil
}
