package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrFinishOrderCommandIsNotConstructed = errors.New(
		"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
	)
)

// FinishOrderCommand represents a shipper completing their delivery leg.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	shipperID uint64
	orderID   uint64

	guard guard.ConstructorGuard
}

// NewFinishOrderCommand creates a command to finish an order's current delivery leg.
func NewFinishOrderCommand(shipperID uint64, orderID uint64) (FinishOrderCommand, error) {
	finishCommand := FinishOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		finishCommand.setShipperID(shipperID),
		finishCommand.setOrderID(orderID),
	); err != nil {
		return FinishOrderCommand{}, err
	}

	return finishCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// ShipperID returns the finishing shipper's id.
func (c FinishOrderCommand) ShipperID() uint64 {
	return c.shipperID
}

// OrderID returns the id of the order to finish.
func (c FinishOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *FinishOrderCommand) setShipperID(shipperID uint64) error {
	if shipperID == 0 {
		return errs.NewValueIsRequiredError("shipper id")
	}

	c.shipperID = shipperID
	return nil
}

func (c *FinishOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}
