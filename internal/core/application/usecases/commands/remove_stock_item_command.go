package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRemoveStockItemCommandIsNotConstructed = errors.New(
		"RemoveStockItemCommand must be created via NewRemoveStockItemCommand constructor",
	)
)

// RemoveStockItemCommand represents a shop owner's request to take a
// product off the shop's shelf entirely.
type RemoveStockItemCommand struct { //nolint:recvcheck //using for validation
	actorID     uint64
	shopID      uint64
	stockItemID uint64

	guard guard.ConstructorGuard
}

// NewRemoveStockItemCommand creates a command to remove a stock item from a shop.
func NewRemoveStockItemCommand(actorID uint64, shopID uint64, stockItemID uint64) (RemoveStockItemCommand, error) {
	removeCommand := RemoveStockItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setActorID(actorID),
		removeCommand.setShopID(shopID),
		removeCommand.setStockItemID(stockItemID),
	); err != nil {
		return RemoveStockItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStockItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStockItemCommandIsNotConstructed)
}

// ActorID returns the id of the user performing the operation.
func (c RemoveStockItemCommand) ActorID() uint64 {
	return c.actorID
}

// ShopID returns the target shop's id.
func (c RemoveStockItemCommand) ShopID() uint64 {
	return c.shopID
}

// StockItemID returns the id of the item to remove.
func (c RemoveStockItemCommand) StockItemID() uint64 {
	return c.stockItemID
}

func (c *RemoveStockItemCommand) setActorID(actorID uint64) error {
	if actorID == 0 {
		return errs.NewValueIsRequiredError("actor id")
	}

	c.actorID = actorID
	return nil
}

func (c *RemoveStockItemCommand) setShopID(shopID uint64) error {
	if shopID == 0 {
		return errs.NewValueIsRequiredError("shop id")
	}

	c.shopID = shopID
	return nil
}

func (c *RemoveStockItemCommand) setStockItemID(stockItemID uint64) error {
	if stockItemID == 0 {
		return errs.NewValueIsRequiredError("stock item id")
	}

	c.stockItemID = stockItemID
	return nil
}
