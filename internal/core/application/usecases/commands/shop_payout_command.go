package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrShopPayoutCommandIsNotConstructed = errors.New(
		"ShopPayoutCommand must be created via NewShopPayoutCommand constructor",
	)
)

// ShopPayoutCommand represents a shop owner's request to move accumulated
// shop revenue onto their personal balance.
type ShopPayoutCommand struct { //nolint:recvcheck //using for validation
	actorID uint64
	shopID  uint64
	amount  float64

	guard guard.ConstructorGuard
}

// NewShopPayoutCommand creates a command to pay out shop revenue.
// The amount actually paid out is clamped to the shop's revenue.
func NewShopPayoutCommand(actorID uint64, shopID uint64, amount float64) (ShopPayoutCommand, error) {
	payoutCommand := ShopPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payoutCommand.setActorID(actorID),
		payoutCommand.setShopID(shopID),
	); err != nil {
		return ShopPayoutCommand{}, err
	}

	payoutCommand.amount = amount
	return payoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ShopPayoutCommand) Validate() error {
	return c.guard.Validate(ErrShopPayoutCommandIsNotConstructed)
}

// ActorID returns the id of the user requesting the payout.
func (c ShopPayoutCommand) ActorID() uint64 {
	return c.actorID
}

// ShopID returns the paying shop's id.
func (c ShopPayoutCommand) ShopID() uint64 {
	return c.shopID
}

// Amount returns the requested payout amount.
func (c ShopPayoutCommand) Amount() float64 {
	return c.amount
}

func (c *ShopPayoutCommand) setActorID(actorID uint64) error {
	if actorID == 0 {
		return errs.NewValueIsRequiredError("actor id")
	}

	c.actorID = actorID
	return nil
}

func (c *ShopPayoutCommand) setShopID(shopID uint64) error {
	if shopID == 0 {
		return errs.NewValueIsRequiredError("shop id")
	}

	c.shopID = shopID
	return nil
}
