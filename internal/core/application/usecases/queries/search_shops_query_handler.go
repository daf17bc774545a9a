package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// SearchShopsQueryHandler retrieves shops by name fragment.
type SearchShopsQueryHandler struct {
	db *gorm.DB
}

// NewSearchShopsQueryHandler creates a handler for shop search queries.
// Requires a GORM database connection for query execution.
func NewSearchShopsQueryHandler(db *gorm.DB) SearchShopsQueryHandler {
	return SearchShopsQueryHandler{db: db}
}

// Handle executes the shop search query.
// Matching is case-insensitive; results are sorted by name.
func (h SearchShopsQueryHandler) Handle(
	ctx context.Context,
	query SearchShopsQuery,
) ([]SearchShopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops := make([]SearchShopsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address_line,
			address_city
		FROM shops
		WHERE name ILIKE ?
		ORDER BY name
	`, "%"+query.Term()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp SearchShopsQueryResponse
		var addressLine string
		var addressCity int

		err = rows.Scan(&resp.ID, &resp.Name, &addressLine, &addressCity)
		if err != nil {
			return nil, err
		}

		address, addrErr := kernel.NewAddress(addressLine, kernel.City(addressCity))
		if addrErr != nil {
			return nil, addrErr
		}
		resp.Address = address.String()
		shops = append(shops, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
