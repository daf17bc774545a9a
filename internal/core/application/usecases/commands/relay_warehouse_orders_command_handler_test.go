package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func parkedOrder(t *testing.T, warehouseCity kernel.City) *order.Order {
	t.Helper()
	target := claimedOrder(t, 2, kernel.DaNang)
	delivered, err := target.Finish(2, kernel.DaNang, marketAddress(t, warehouseCity))
	require.NoError(t, err)
	require.False(t, delivered)
	return target
}

func TestRelayWarehouseOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRelayWarehouseOrdersCommand()

	parked := parkedOrder(t, kernel.Hanoi)
	localShipper, err := user.NewUser(4, "hung", "s3cret", "Hung Le", "0933445566",
		marketAddress(t, kernel.Hanoi), user.Shipper)
	require.NoError(t, err)
	owningShop := shopWithItem(t, 40_001, 30_001, 25_000, 10)

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstAtWarehouse", ctx).Return(parked, nil).Once(),
		userRepo.On("GetShippersByCity", ctx, kernel.Hanoi).
			Return([]*user.User{localShipper}, nil).Once(),
		shopRepo.On("Get", ctx, uint64(40_001)).Return(owningShop, nil).Once(),
		orderRepo.On("Update", ctx, parked).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayWarehouseOrdersCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Shipping, parked.Status())
	require.NotNil(t, parked.ShipperID())
	assert.Equal(t, uint64(4), *parked.ShipperID())
	assert.Equal(t, kernel.DaNang, parked.Location().City())

	userRepo.AssertExpectations(t)
	shopRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRelayWarehouseOrdersCommandHandler_Handle_NoParkedOrder(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRelayWarehouseOrdersCommand()

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstAtWarehouse", ctx).
			Return(nil, errs.NewObjectNotFoundError("order at warehouse", nil)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayWarehouseOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoParkedOrderFound)
	userRepo.AssertNotCalled(t, "GetShippersByCity", ctx, mock.Anything)
}

func TestRelayWarehouseOrdersCommandHandler_Handle_NoLocalShipper(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRelayWarehouseOrdersCommand()

	parked := parkedOrder(t, kernel.Hanoi)

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstAtWarehouse", ctx).Return(parked, nil).Once(),
		userRepo.On("GetShippersByCity", ctx, kernel.Hanoi).
			Return([]*user.User{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRelayWarehouseOrdersCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoLocalShipperFound)
	assert.Equal(t, order.AtWarehouse, parked.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
