package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/errs"
)

var (
	ErrNoParkedOrderFound  = errors.New("no parked order found")
	ErrNoLocalShipperFound = errors.New("no local shipper found")
)

// RelayWarehouseOrdersCommandHandler orchestrates the warehouse relay.
// Orders parked at a warehouse wait for a shipper from the warehouse's
// city; this handler pairs the oldest parked order with the first such
// shipper so deliveries do not strand between legs.
//
// Example:
//
//	handler := NewRelayWarehouseOrdersCommandHandler(uowFactory)
//	cmd := NewRelayWarehouseOrdersCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoParkedOrderFound):
//	    log.Println("No orders waiting at warehouses")
//	case errors.Is(err, ErrNoLocalShipperFound):
//	    log.Println("No shipper available in the warehouse city")
//	case err != nil:
//	    log.Printf("Relay failed: %v", err)
//	default:
//	    log.Println("Parked order handed to a local shipper")
//	}
type RelayWarehouseOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewRelayWarehouseOrdersCommandHandler creates a handler for warehouse relay operations.
func NewRelayWarehouseOrdersCommandHandler(uowFactory UoWFactory) RelayWarehouseOrdersCommandHandler {
	return RelayWarehouseOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse relay command.
// Retrieves the oldest order at a warehouse and the shippers registered in
// its city, then claims the order for the first of them. Returns specific
// errors for no parked orders (ErrNoParkedOrderFound) or no local shippers
// (ErrNoLocalShipperFound).
func (h RelayWarehouseOrdersCommandHandler) Handle(ctx context.Context, cmd RelayWarehouseOrdersCommand) error {
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

	parked, err := orderRepo.GetFirstAtWarehouse(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoParkedOrderFound
	}
	if err != nil {
		return err
	}

	shippers, err := userRepo.GetShippersByCity(ctx, parked.Location().City())
	if err != nil {
		return err
	}
	if len(shippers) == 0 {
		return ErrNoLocalShipperFound
	}

	owningShop, err := shopRepo.Get(ctx, parked.ShopID())
	if err != nil {
		return err
	}

	shipper := shippers[0]
	if err = parked.Claim(shipper.ID(), shipper.Address().City(), owningShop.Address().City()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, parked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
