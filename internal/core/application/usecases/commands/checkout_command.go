package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a customer's request to turn their cart into orders.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID uint64

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the given customer's cart.
func NewCheckoutCommand(customerID uint64) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := checkoutCommand.setCustomerID(customerID); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the id of the customer checking out.
func (c CheckoutCommand) CustomerID() uint64 {
	return c.customerID
}

func (c *CheckoutCommand) setCustomerID(customerID uint64) error {
	if customerID == 0 {
		return errs.NewValueIsRequiredError("customer id")
	}

	c.customerID = customerID
	return nil
}
