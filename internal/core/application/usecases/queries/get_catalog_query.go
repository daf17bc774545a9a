package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery retrieves the stock on sale, for the whole marketplace
// or for a single shop when shopID is non-zero.
type GetCatalogQuery struct {
	shopID uint64

	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query for the catalog.
// Pass shopID 0 to list every shop's stock.
func NewGetCatalogQuery(shopID uint64) GetCatalogQuery {
	return GetCatalogQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// ShopID returns the shop filter, 0 meaning all shops.
func (q GetCatalogQuery) ShopID() uint64 {
	return q.shopID
}

// GetCatalogQueryResponse represents one stock item on sale.
type GetCatalogQueryResponse struct {
	ID       uint64
	ShopID   uint64
	Name     string
	Price    float64
	Quantity int
}
