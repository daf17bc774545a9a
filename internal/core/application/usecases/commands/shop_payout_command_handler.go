package commands

import (
	"context"
)

// ShopPayoutCommandHandler handles the business logic for revenue payouts.
// Moves money from shop revenue to the owner's balance; the two sides of
// the transfer commit together.
type ShopPayoutCommandHandler struct {
	uowFactory UoWFactory
}

// NewShopPayoutCommandHandler creates a handler for payout operations.
func NewShopPayoutCommandHandler(uowFactory UoWFactory) ShopPayoutCommandHandler {
	return ShopPayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payout command and returns the amount transferred.
// Returns ErrNotShopOwner when the actor does not own the shop. A payout
// of zero, from an empty revenue, succeeds and transfers nothing.
func (h ShopPayoutCommandHandler) Handle(ctx context.Context, cmd ShopPayoutCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	shopRepo := uow.ShopRepository()

	payingShop, err := shopRepo.Get(ctx, cmd.ShopID())
	if err != nil {
		return 0, err
	}

	if payingShop.OwnerID() != cmd.ActorID() {
		return 0, ErrNotShopOwner
	}

	owner, err := userRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return 0, err
	}

	paid := payingShop.Payout(cmd.Amount())
	if paid > 0 {
		if err = owner.Deposit(paid); err != nil {
			return 0, err
		}
	}

	if err = shopRepo.Update(ctx, payingShop); err != nil {
		return 0, err
	}

	if err = userRepo.Update(ctx, owner); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return paid, nil
}
