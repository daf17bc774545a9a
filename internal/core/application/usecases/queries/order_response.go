// Package queries contains read-only operations over the marketplace state.
// Implements the query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return flat read models, bypassing
// the domain aggregates entirely.
package queries

import (
	"database/sql"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderResponse is the flat read model for a single order.
// Shared by every order-listing query.
type OrderResponse struct {
	ID         uint64
	OrderedAt  time.Time
	CustomerID uint64
	ShopID     uint64
	ShipperID  *uint64
	Status     string
	Location   string
	TotalPrice float64
}

// orderColumns is the select list every order query reads, in scan order.
const orderColumns = `
		id,
		ordered_at,
		customer_id,
		shop_id,
		shipper_id,
		status,
		location_line,
		location_city,
		total_price
`

func scanOrders(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var status int
		var locationLine string
		var locationCity int
		var shipperID sql.NullInt64

		err := rows.Scan(
			&resp.ID,
			&resp.OrderedAt,
			&resp.CustomerID,
			&resp.ShopID,
			&shipperID,
			&status,
			&locationLine,
			&locationCity,
			&resp.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		if shipperID.Valid {
			id := uint64(shipperID.Int64)
			resp.ShipperID = &id
		}
		resp.Status = order.Status(status).String()

		location, locErr := kernel.NewAddress(locationLine, kernel.City(locationCity))
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location.String()

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
