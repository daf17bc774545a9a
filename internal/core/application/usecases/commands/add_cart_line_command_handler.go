package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// AddCartLineCommandHandler handles the business logic for cart additions.
// Resolves the referenced stock item through its owning shop and delegates
// the quantity rules to the cart aggregate.
type AddCartLineCommandHandler struct {
	uowFactory UoWFactory
	ids        kernel.IDGenerator
}

// NewAddCartLineCommandHandler creates a handler for cart addition operations.
// Requires an id generator drawing from the cart line sequence.
func NewAddCartLineCommandHandler(uowFactory UoWFactory, ids kernel.IDGenerator) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the cart addition command.
// Merges with an existing line for the same stock item; otherwise a new
// line is created with a fresh id.
func (h AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) error {
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

	userRepo := uow.UserRepository()
	shopRepo := uow.ShopRepository()

	customer, err := userRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	customerCart, err := customer.Cart()
	if err != nil {
		return err
	}

	owningShop, err := shopRepo.GetByStockItem(ctx, cmd.StockItemID())
	if err != nil {
		return err
	}

	item, ok := owningShop.StockItem(cmd.StockItemID())
	if !ok {
		return errs.NewObjectNotFoundError("stock item id", cmd.StockItemID())
	}

	if err = customerCart.AddLine(h.ids.Next(), item, cmd.Quantity()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, customer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
