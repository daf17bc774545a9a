package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
)

// FinishOrderCommandHandler handles the business logic for completing a
// delivery leg. The order lands at the customer's address when the shipper
// operates in the destination city, or at a relay warehouse there
// otherwise. The shipper is paid the flat fee for the leg either way.
type FinishOrderCommandHandler struct {
	uowFactory UoWFactory
	shipperFee float64
}

// NewFinishOrderCommandHandler creates a handler for delivery completion operations.
// shipperFee is the flat amount credited to the shipper per finished leg.
func NewFinishOrderCommandHandler(uowFactory UoWFactory, shipperFee float64) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
		shipperFee: shipperFee,
	}
}

// Handle processes the delivery completion command.
// Returns delivered=true when the order reached the customer, false when
// it was parked at a warehouse for the next leg.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	orderRepo := uow.OrderRepository()

	shipper, err := userRepo.Get(ctx, cmd.ShipperID())
	if err != nil {
		return false, err
	}
	if shipper.Role() != user.Shipper {
		return false, ErrNotAShipper
	}

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	customer, err := userRepo.Get(ctx, target.CustomerID())
	if err != nil {
		return false, err
	}

	delivered, err := target.Finish(shipper.ID(), shipper.Address().City(), customer.Address())
	if err != nil {
		return false, err
	}

	if err = shipper.Deposit(h.shipperFee); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return false, err
	}

	if err = userRepo.Update(ctx, shipper); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return delivered, nil
}
