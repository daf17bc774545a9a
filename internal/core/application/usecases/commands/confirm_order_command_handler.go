package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles the business logic for receipt
// confirmation. Confirmation is the settlement trigger for the shop: the
// shop's portion of the order total, everything except the platform's cut,
// is credited to its revenue exactly once.
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
	profitRate float64
}

// NewConfirmOrderCommandHandler creates a handler for confirmation operations.
// profitRate is the platform's fraction; the shop receives 1 - profitRate
// of the order total.
func NewConfirmOrderCommandHandler(uowFactory UoWFactory, profitRate float64) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		profitRate: profitRate,
	}
}

// Handle processes the confirmation command.
// Returns confirmed=false, without an error, when the order does not exist
// for this customer or is not in Delivered status. Confirming a second
// time also returns false, so revenue is never double-credited.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (bool, error) {
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

	shopRepo := uow.ShopRepository()
	orderRepo := uow.OrderRepository()

	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if target.CustomerID() != cmd.CustomerID() || target.Status() != order.Delivered {
		return false, nil
	}

	if err = target.Confirm(); err != nil {
		return false, err
	}

	owningShop, err := shopRepo.Get(ctx, target.ShopID())
	if err != nil {
		return false, err
	}
	owningShop.IncreaseRevenue(target.TotalPrice() * (1 - h.profitRate))

	if err = orderRepo.Update(ctx, target); err != nil {
		return false, err
	}

	if err = shopRepo.Update(ctx, owningShop); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
