package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrdersReadyToShipQueryIsNotConstructed = errors.New(
		"GetOrdersReadyToShipQuery must be created via NewGetOrdersReadyToShipQuery constructor",
	)
)

// GetOrdersReadyToShipQuery retrieves the orders a shipper in the given
// city could claim: accepted by their shop or parked at a warehouse there,
// and not yet assigned to a shipper.
type GetOrdersReadyToShipQuery struct {
	city kernel.City

	guard guard.ConstructorGuard
}

// NewGetOrdersReadyToShipQuery creates a query for claimable orders in a city.
func NewGetOrdersReadyToShipQuery(city kernel.City) (GetOrdersReadyToShipQuery, error) {
	if err := city.Validate(); err != nil {
		return GetOrdersReadyToShipQuery{}, err
	}

	return GetOrdersReadyToShipQuery{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersReadyToShipQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersReadyToShipQueryIsNotConstructed)
}

// City returns the city claimable orders are requested for.
func (q GetOrdersReadyToShipQuery) City() kernel.City {
	return q.city
}
