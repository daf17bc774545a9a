package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrNotShopOwner is returned when a user tries to manage a shop they do not own.
var ErrNotShopOwner = errors.New("user is not the shop owner")

// AddStockItemCommandHandler handles the business logic for stocking a shop.
// Allocates the stock item id from the stock sequence and persists the shop
// aggregate with its new shelf entry.
type AddStockItemCommandHandler struct {
	uowFactory ShopUoWFactory
	ids        kernel.IDGenerator
}

// NewAddStockItemCommandHandler creates a handler for stock addition operations.
func NewAddStockItemCommandHandler(uowFactory ShopUoWFactory, ids kernel.IDGenerator) AddStockItemCommandHandler {
	return AddStockItemCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the stock addition command and returns the new item's id.
// Returns ErrNotShopOwner when the actor does not own the target shop.
func (h AddStockItemCommandHandler) Handle(ctx context.Context, cmd AddStockItemCommand) (uint64, error) {
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

	shopRepo := uow.ShopRepository()

	targetShop, err := shopRepo.Get(ctx, cmd.ShopID())
	if err != nil {
		return 0, err
	}

	if targetShop.OwnerID() != cmd.ActorID() {
		return 0, ErrNotShopOwner
	}

	item, err := targetShop.AddItem(h.ids.Next(), cmd.Name(), cmd.Price(), cmd.Quantity())
	if err != nil {
		return 0, err
	}

	if err = shopRepo.Update(ctx, targetShop); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return item.ID(), nil
}
