package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/user"
)

// ErrNotAShipper is returned when a customer tries to perform a delivery operation.
var ErrNotAShipper = errors.New("user is not a shipper")

// ClaimOrderCommandHandler handles the business logic for order claiming.
// An order is claimable when it waits at its shop or at a relay warehouse
// in the shipper's own city.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimOrderCommandHandler creates a handler for order claim operations.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order claim command.
// Returns order.ErrNotClaimable when the order's status or location does
// not allow this shipper to take it.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	shipper, err := userRepo.Get(ctx, cmd.ShipperID())
	if err != nil {
		return err
	}
	if shipper.Role() != user.Shipper {
		return ErrNotAShipper
	}

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	// The in-transit placeholder is anchored to the shop's city even on a
	// relay leg claimed in the destination city.
	owningShop, err := shopRepo.Get(ctx, target.ShopID())
	if err != nil {
		return err
	}

	if err = target.Claim(shipper.ID(), shipper.Address().City(), owningShop.Address().City()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
