package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrRelayWarehouseOrdersCommandIsNotConstructed = errors.New(
	"RelayWarehouseOrdersCommand must be created via NewRelayWarehouseOrdersCommand constructor",
)

// RelayWarehouseOrdersCommand triggers the hand-off of an order parked at a
// relay warehouse to a shipper operating in the warehouse's city. It finds
// the oldest order waiting at a warehouse and claims it on behalf of a
// local shipper, starting the final delivery leg.
//
// Example:
//
//	cmd := NewRelayWarehouseOrdersCommand()
//	handler := NewRelayWarehouseOrdersCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No parked orders or no local shippers: %v", err)
//	}
type RelayWarehouseOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewRelayWarehouseOrdersCommand creates a new command to trigger the warehouse relay.
// This is a parameterless command that initiates the order-shipper matching process.
func NewRelayWarehouseOrdersCommand() RelayWarehouseOrdersCommand {
	return RelayWarehouseOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRelayWarehouseOrdersCommandIsNotConstructed if validation fails.
func (c *RelayWarehouseOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrRelayWarehouseOrdersCommandIsNotConstructed,
	)
}
