package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)
)

// ClaimOrderCommand represents a shipper's request to take an order that is
// waiting in their city.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	shipperID uint64
	orderID   uint64

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim an order for delivery.
func NewClaimOrderCommand(shipperID uint64, orderID uint64) (ClaimOrderCommand, error) {
	claimCommand := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setShipperID(shipperID),
		claimCommand.setOrderID(orderID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// ShipperID returns the claiming shipper's id.
func (c ClaimOrderCommand) ShipperID() uint64 {
	return c.shipperID
}

// OrderID returns the id of the order to claim.
func (c ClaimOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *ClaimOrderCommand) setShipperID(shipperID uint64) error {
	if shipperID == 0 {
		return errs.NewValueIsRequiredError("shipper id")
	}

	c.shipperID = shipperID
	return nil
}

func (c *ClaimOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}
