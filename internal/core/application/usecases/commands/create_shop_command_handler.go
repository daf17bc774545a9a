package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
)

// CreateShopCommandHandler handles the business logic for opening a shop.
// Creates the shop aggregate and records its ownership on the customer,
// both within a single transaction.
type CreateShopCommandHandler struct {
	uowFactory UoWFactory
	ids        kernel.IDGenerator
}

// NewCreateShopCommandHandler creates a handler for shop creation operations.
// Requires a UoWFactory spanning user and shop aggregates and an id generator
// drawing from the shop id sequence.
func NewCreateShopCommandHandler(uowFactory UoWFactory, ids kernel.IDGenerator) CreateShopCommandHandler {
	return CreateShopCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the shop creation command and returns the new shop's id.
// Fails with user.ErrNotACustomer for shippers and user.ErrAlreadyOwnsShop
// when the customer already owns a shop.
func (h CreateShopCommandHandler) Handle(ctx context.Context, cmd CreateShopCommand) (uint64, error) {
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

	owner, err := userRepo.Get(ctx, cmd.OwnerID())
	if err != nil {
		return 0, err
	}

	newShop, err := shop.NewShop(h.ids.Next(), owner.ID(), cmd.Name(), cmd.Address())
	if err != nil {
		return 0, err
	}

	if err = owner.AssignShop(newShop.ID()); err != nil {
		return 0, err
	}

	if err = shopRepo.Add(ctx, newShop); err != nil {
		return 0, err
	}

	if err = userRepo.Update(ctx, owner); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newShop.ID(), nil
}
