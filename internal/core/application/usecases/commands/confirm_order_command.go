package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmOrderCommand represents a customer confirming receipt of a
// delivered order, which releases the shop's share of the money.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	customerID uint64
	orderID    uint64

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm a delivered order.
func NewConfirmOrderCommand(customerID uint64, orderID uint64) (ConfirmOrderCommand, error) {
	confirmCommand := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setCustomerID(customerID),
		confirmCommand.setOrderID(orderID),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// CustomerID returns the confirming customer's id.
func (c ConfirmOrderCommand) CustomerID() uint64 {
	return c.customerID
}

// OrderID returns the id of the order to confirm.
func (c ConfirmOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *ConfirmOrderCommand) setCustomerID(customerID uint64) error {
	if customerID == 0 {
		return errs.NewValueIsRequiredError("customer id")
	}

	c.customerID = customerID
	return nil
}

func (c *ConfirmOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}
