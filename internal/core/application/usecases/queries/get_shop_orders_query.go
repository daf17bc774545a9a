package queries

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetShopOrdersQueryIsNotConstructed = errors.New(
		"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
	)
)

// GetShopOrdersQuery retrieves the orders addressed to a shop.
// With pendingOnly set, only orders still awaiting the shop's acceptance
// are returned.
type GetShopOrdersQuery struct {
	shopID      uint64
	pendingOnly bool

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for the given shop's orders.
func NewGetShopOrdersQuery(shopID uint64, pendingOnly bool) (GetShopOrdersQuery, error) {
	if shopID == 0 {
		return GetShopOrdersQuery{}, errs.NewValueIsRequiredError("shop id")
	}

	return GetShopOrdersQuery{
		shopID:      shopID,
		pendingOnly: pendingOnly,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// ShopID returns the shop whose orders are requested.
func (q GetShopOrdersQuery) ShopID() uint64 {
	return q.shopID
}

// PendingOnly reports whether only not-yet-accepted orders are requested.
func (q GetShopOrdersQuery) PendingOnly() bool {
	return q.pendingOnly
}
