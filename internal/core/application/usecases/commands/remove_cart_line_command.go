package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRemoveCartLineCommandIsNotConstructed = errors.New(
		"RemoveCartLineCommand must be created via NewRemoveCartLineCommand constructor",
	)
)

// RemoveCartLineCommand represents a customer's request to take a quantity
// of a stock item out of their cart. A negative quantity is a no-op, which
// the cart itself enforces, so it passes command validation.
type RemoveCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID  uint64
	stockItemID uint64
	quantity    int

	guard guard.ConstructorGuard
}

// NewRemoveCartLineCommand creates a command to reduce or delete a cart line.
func NewRemoveCartLineCommand(customerID uint64, stockItemID uint64, quantity int) (RemoveCartLineCommand, error) {
	lineCommand := RemoveCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setCustomerID(customerID),
		lineCommand.setStockItemID(stockItemID),
	); err != nil {
		return RemoveCartLineCommand{}, err
	}

	lineCommand.quantity = quantity
	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartLineCommandIsNotConstructed)
}

// CustomerID returns the id of the cart's owner.
func (c RemoveCartLineCommand) CustomerID() uint64 {
	return c.customerID
}

// StockItemID returns the referenced stock item's id.
func (c RemoveCartLineCommand) StockItemID() uint64 {
	return c.stockItemID
}

// Quantity returns the quantity to remove.
func (c RemoveCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *RemoveCartLineCommand) setCustomerID(customerID uint64) error {
	if customerID == 0 {
		return errs.NewValueIsRequiredError("customer id")
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveCartLineCommand) setStockItemID(stockItemID uint64) error {
	if stockItemID == 0 {
		return errs.NewValueIsRequiredError("stock item id")
	}

	c.stockItemID = stockItemID
	return nil
}
