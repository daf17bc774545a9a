package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler retrieves the orders addressed to a shop,
// optionally narrowed to those still waiting for acceptance.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop order queries.
// Requires a GORM database connection for query execution.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the shop's orders.
// Results are sorted by order ID for consistent output.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE shop_id = ?
	`
	args := []any{query.ShopID()}
	if query.PendingOnly() {
		sql += ` AND status = ?`
		args = append(args, int(order.Created))
	}
	sql += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
