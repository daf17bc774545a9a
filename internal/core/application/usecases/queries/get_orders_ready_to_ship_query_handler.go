package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersReadyToShipQueryHandler retrieves claimable orders for a city.
// Feeds the shipper-facing pickup board.
type GetOrdersReadyToShipQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersReadyToShipQueryHandler creates a handler for pickup board queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersReadyToShipQueryHandler(db *gorm.DB) GetOrdersReadyToShipQueryHandler {
	return GetOrdersReadyToShipQueryHandler{db: db}
}

// Handle executes the query to retrieve claimable orders in the city.
// Returns orders in ShopAccepted or AtWarehouse status with no assigned
// shipper, sorted by order ID for consistent output.
func (h GetOrdersReadyToShipQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersReadyToShipQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status IN (?, ?)
		  AND shipper_id IS NULL
		  AND location_city = ?
		ORDER BY id
	`, int(order.ShopAccepted), int(order.AtWarehouse), int(query.City())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
