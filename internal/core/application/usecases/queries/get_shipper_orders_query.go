package queries

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetShipperOrdersQueryIsNotConstructed = errors.New(
		"GetShipperOrdersQuery must be created via NewGetShipperOrdersQuery constructor",
	)
)

// GetShipperOrdersQuery retrieves the orders currently carried by a shipper.
type GetShipperOrdersQuery struct {
	shipperID uint64

	guard guard.ConstructorGuard
}

// NewGetShipperOrdersQuery creates a query for the given shipper's worklist.
func NewGetShipperOrdersQuery(shipperID uint64) (GetShipperOrdersQuery, error) {
	if shipperID == 0 {
		return GetShipperOrdersQuery{}, errs.NewValueIsRequiredError("shipper id")
	}

	return GetShipperOrdersQuery{
		shipperID: shipperID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipperOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperOrdersQueryIsNotConstructed)
}

// ShipperID returns the shipper whose worklist is requested.
func (q GetShipperOrdersQuery) ShipperID() uint64 {
	return q.shipperID
}
