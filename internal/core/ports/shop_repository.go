package ports

import (
	"context"

	"marketplace/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
// Provides methods for storing, retrieving, and querying shop entities
// with their complete stock.
type ShopRepository interface {
	// Add persists a new shop aggregate to storage.
	// The shop must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shop.Shop) error

	// Update persists changes to an existing shop aggregate.
	// The shop must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shop.Shop) error

	// Get retrieves a shop aggregate by its unique identifier.
	// Returns the complete shop with all its stock items.
	Get(ctx context.Context, id uint64) (*shop.Shop, error)

	// GetByStockItem retrieves the shop holding the given stock item.
	GetByStockItem(ctx context.Context, stockItemID uint64) (*shop.Shop, error)

	// GetAll retrieves every shop in the marketplace.
	GetAll(ctx context.Context) ([]*shop.Shop, error)
}
