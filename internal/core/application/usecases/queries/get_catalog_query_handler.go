package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCatalogQueryHandler retrieves stock items on sale.
// Items with zero quantity stay listed; availability is enforced at cart
// and checkout time, not here.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the catalog query.
// Results are sorted by item ID for consistent output.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			shop_id,
			name,
			price,
			quantity
		FROM stock_items
	`
	args := []any{}
	if query.ShopID() != 0 {
		sql += ` WHERE shop_id = ?`
		args = append(args, query.ShopID())
	}
	sql += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetCatalogQueryResponse, 0)
	for rows.Next() {
		var resp GetCatalogQueryResponse
		err = rows.Scan(&resp.ID, &resp.ShopID, &resp.Name, &resp.Price, &resp.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
