package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipperOrdersQueryHandler retrieves the orders a shipper is carrying.
// An order leaves the worklist when its leg finishes, so only Shipping
// orders ever reference a shipper.
type GetShipperOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShipperOrdersQueryHandler creates a handler for shipper worklist queries.
// Requires a GORM database connection for query execution.
func NewGetShipperOrdersQueryHandler(db *gorm.DB) GetShipperOrdersQueryHandler {
	return GetShipperOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the shipper's current orders.
// Results are sorted by order ID for consistent output.
func (h GetShipperOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShipperOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE shipper_id = ?
		ORDER BY id
	`, query.ShipperID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
