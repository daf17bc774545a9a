package ports

import (
	"context"

	"marketplace/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for the platform ledger.
// The ledger is a singleton row created on first access.
type LedgerRepository interface {
	// Get retrieves the platform ledger, creating it if it does not exist yet.
	Get(ctx context.Context) (*ledger.Ledger, error)

	// Update persists changes to the platform ledger.
	Update(ctx context.Context, aggregate *ledger.Ledger) error
}
