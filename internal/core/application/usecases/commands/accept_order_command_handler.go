package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler handles the business logic for shop acceptance.
// Acceptance is idempotent at the use case level: accepting an order that
// is not addressed to the actor's shop, or that has already moved past
// Created, is silently ignored so UI flows can retry freely.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance operations.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order acceptance command.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	actor, err := userRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	ownedShopID := actor.OwnedShopID()
	if ownedShopID == nil || *ownedShopID != target.ShopID() || target.Status() != order.Created {
		return nil
	}

	if err = target.Accept(); err != nil {
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
