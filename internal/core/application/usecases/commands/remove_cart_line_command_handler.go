package commands

import (
	"context"
)

// RemoveCartLineCommandHandler handles the business logic for cart removals.
type RemoveCartLineCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRemoveCartLineCommandHandler creates a handler for cart removal operations.
func NewRemoveCartLineCommandHandler(uowFactory UserUoWFactory) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart removal command.
// Removing more than the line holds deletes the line; removing from a line
// that does not exist is a no-op.
func (h RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
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

	customer, err := userRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	customerCart, err := customer.Cart()
	if err != nil {
		return err
	}

	customerCart.RemoveLine(cmd.StockItemID(), cmd.Quantity())

	if err = userRepo.Update(ctx, customer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
