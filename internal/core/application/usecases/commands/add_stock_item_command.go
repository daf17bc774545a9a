package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddStockItemCommandIsNotConstructed = errors.New(
		"AddStockItemCommand must be created via NewAddStockItemCommand constructor",
	)
)

// AddStockItemCommand represents a shop owner's request to put a new
// product on the shop's shelf.
type AddStockItemCommand struct { //nolint:recvcheck //using for validation
	actorID  uint64
	shopID   uint64
	name     string
	price    float64
	quantity int

	guard guard.ConstructorGuard
}

// NewAddStockItemCommand creates a command to add stock to a shop.
// Requires a positive price and a non-negative quantity.
func NewAddStockItemCommand(
	actorID uint64,
	shopID uint64,
	name string,
	price float64,
	quantity int,
) (AddStockItemCommand, error) {
	stockCommand := AddStockItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stockCommand.setActorID(actorID),
		stockCommand.setShopID(shopID),
		stockCommand.setName(name),
		stockCommand.setPrice(price),
		stockCommand.setQuantity(quantity),
	); err != nil {
		return AddStockItemCommand{}, err
	}

	return stockCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockItemCommand) Validate() error {
	return c.guard.Validate(ErrAddStockItemCommandIsNotConstructed)
}

// ActorID returns the id of the user performing the operation.
func (c AddStockItemCommand) ActorID() uint64 {
	return c.actorID
}

// ShopID returns the target shop's id.
func (c AddStockItemCommand) ShopID() uint64 {
	return c.shopID
}

// Name returns the product name.
func (c AddStockItemCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c AddStockItemCommand) Price() float64 {
	return c.price
}

// Quantity returns the initial quantity on the shelf.
func (c AddStockItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddStockItemCommand) setActorID(actorID uint64) error {
	if actorID == 0 {
		return errs.NewValueIsRequiredError("actor id")
	}

	c.actorID = actorID
	return nil
}

func (c *AddStockItemCommand) setShopID(shopID uint64) error {
	if shopID == 0 {
		return errs.NewValueIsRequiredError("shop id")
	}

	c.shopID = shopID
	return nil
}

func (c *AddStockItemCommand) setName(name string) error {
	if name == "" {
		return shop.ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddStockItemCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is not greater than 0", price))
	}

	c.price = price
	return nil
}

func (c *AddStockItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}

	c.quantity = quantity
	return nil
}
