package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and the parties involved.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, status and shipper assignment.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer.
	GetByCustomer(ctx context.Context, customerID uint64) ([]*order.Order, error)

	// GetByShipper retrieves all orders currently assigned to the given shipper.
	GetByShipper(ctx context.Context, shipperID uint64) ([]*order.Order, error)

	// GetByShop retrieves all orders addressed to the given shop.
	GetByShop(ctx context.Context, shopID uint64) ([]*order.Order, error)

	// GetClaimableInCity retrieves orders a shipper located in the given city
	// may take: orders accepted by their shop or parked at a warehouse, not
	// yet assigned to a shipper, whose current location is in that city.
	GetClaimableInCity(ctx context.Context, city kernel.City) ([]*order.Order, error)

	// GetFirstAtWarehouse retrieves the oldest order parked at a relay
	// warehouse and not yet picked up for its final leg.
	GetFirstAtWarehouse(ctx context.Context) (*order.Order, error)
}
