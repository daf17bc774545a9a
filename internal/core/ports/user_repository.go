// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Provides methods for storing, retrieving, and querying user entities
// with their complete state including the customer cart.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	// The user must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// For customers the cart is loaded with all its lines.
	Get(ctx context.Context, id uint64) (*user.User, error)

	// GetByUsername retrieves a user aggregate by its login name.
	// Usernames are unique across the marketplace.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetShippersByCity retrieves all shippers whose home address is in the
	// given city. Used by the warehouse relay to hand parked orders to a
	// local shipper.
	GetShippersByCity(ctx context.Context, city kernel.City) ([]*user.User, error)
}
