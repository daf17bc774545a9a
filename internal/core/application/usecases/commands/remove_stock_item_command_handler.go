package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// RemoveStockItemCommandHandler handles the business logic for delisting stock.
// Removing an item does not touch carts that already reference it: such
// lines simply fail to resolve at checkout time.
type RemoveStockItemCommandHandler struct {
	uowFactory ShopUoWFactory
}

// NewRemoveStockItemCommandHandler creates a handler for stock removal operations.
func NewRemoveStockItemCommandHandler(uowFactory ShopUoWFactory) RemoveStockItemCommandHandler {
	return RemoveStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock removal command.
// Returns ErrNotShopOwner when the actor does not own the target shop and
// a not-found error when the item is not on the shop's shelf.
func (h RemoveStockItemCommandHandler) Handle(ctx context.Context, cmd RemoveStockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shopRepo := uow.ShopRepository()

	targetShop, err := shopRepo.Get(ctx, cmd.ShopID())
	if err != nil {
		return err
	}

	if targetShop.OwnerID() != cmd.ActorID() {
		return ErrNotShopOwner
	}

	if !targetShop.RemoveItem(cmd.StockItemID()) {
		return errs.NewObjectNotFoundError("stock item id", cmd.StockItemID())
	}

	if err = shopRepo.Update(ctx, targetShop); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
