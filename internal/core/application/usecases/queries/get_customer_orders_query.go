package queries

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves every order a customer has placed,
// across all statuses, for purchase-history views.
type GetCustomerOrdersQuery struct {
	customerID uint64

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the given customer's orders.
func NewGetCustomerOrdersQuery(customerID uint64) (GetCustomerOrdersQuery, error) {
	if customerID == 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customer id")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() uint64 {
	return q.customerID
}
