package ledgerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB, tracker aggregateTracker) *GormLedgerRepository {
	return &GormLedgerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the platform ledger, creating the row if it does not exist.
func (r *GormLedgerRepository) Get(ctx context.Context) (*ledger.Ledger, error) {
	var dto LedgerDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", ledgerRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := ledger.NewLedger()
		dto = fromDomain(fresh)
		if createErr := r.db.WithContext(ctx).Create(&dto).Error; createErr != nil {
			return nil, createErr
		}
		return fresh, nil
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the ledger's accumulated profit.
func (r *GormLedgerRepository) Update(ctx context.Context, aggregate *ledger.Ledger) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Save(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(ledgerRowID, aggregate)
	return nil
}
