package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddCartLineCommandIsNotConstructed = errors.New(
		"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
	)
)

// AddCartLineCommand represents a customer's request to put a quantity of
// a stock item into their cart.
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	customerID  uint64
	stockItemID uint64
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand creates a command to add a cart line.
// Quantity must be positive; availability is checked against current stock
// by the cart itself.
func NewAddCartLineCommand(customerID uint64, stockItemID uint64, quantity int) (AddCartLineCommand, error) {
	lineCommand := AddCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineCommand.setCustomerID(customerID),
		lineCommand.setStockItemID(stockItemID),
		lineCommand.setQuantity(quantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return lineCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

// CustomerID returns the id of the cart's owner.
func (c AddCartLineCommand) CustomerID() uint64 {
	return c.customerID
}

// StockItemID returns the referenced stock item's id.
func (c AddCartLineCommand) StockItemID() uint64 {
	return c.stockItemID
}

// Quantity returns the quantity to add.
func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartLineCommand) setCustomerID(customerID uint64) error {
	if customerID == 0 {
		return errs.NewValueIsRequiredError("customer id")
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartLineCommand) setStockItemID(stockItemID uint64) error {
	if stockItemID == 0 {
		return errs.NewValueIsRequiredError("stock item id")
	}

	c.stockItemID = stockItemID
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
