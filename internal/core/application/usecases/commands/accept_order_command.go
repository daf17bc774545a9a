package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
)

// AcceptOrderCommand represents a shop owner acknowledging a freshly
// created order so shippers can pick it up.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	actorID uint64
	orderID uint64

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept an order on behalf of its shop.
func NewAcceptOrderCommand(actorID uint64, orderID uint64) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setActorID(actorID),
		acceptCommand.setOrderID(orderID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// ActorID returns the id of the user performing the operation.
func (c AcceptOrderCommand) ActorID() uint64 {
	return c.actorID
}

// OrderID returns the id of the order to accept.
func (c AcceptOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *AcceptOrderCommand) setActorID(actorID uint64) error {
	if actorID == 0 {
		return errs.NewValueIsRequiredError("actor id")
	}

	c.actorID = actorID
	return nil
}

func (c *AcceptOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}
