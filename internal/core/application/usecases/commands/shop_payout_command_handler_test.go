package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shopWithRevenue(t *testing.T, ownerID uint64, revenue float64) *shop.Shop {
	t.Helper()
	s, err := shop.RestoreShop(40_001, ownerID, "Tea Corner",
		marketAddress(t, kernel.DaNang), nil, revenue)
	require.NoError(t, err)
	return s
}

func TestShopPayoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewShopPayoutCommand(1, 40_001, 30_000)
	require.NoError(t, err)

	owner := customerWithBalance(t, 10_000)
	payingShop := shopWithRevenue(t, 1, 45_500)

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		shopRepo.On("Get", ctx, uint64(40_001)).Return(payingShop, nil).Once(),
		userRepo.On("Get", ctx, uint64(1)).Return(owner, nil).Once(),
		shopRepo.On("Update", ctx, payingShop).Return(nil).Once(),
		userRepo.On("Update", ctx, owner).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewShopPayoutCommandHandler(factory)
	paid, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 30_000.0, paid, 0.001)
	assert.InDelta(t, 15_500.0, payingShop.Revenue(), 0.001)
	assert.InDelta(t, 40_000.0, owner.Balance(), 0.001)

	userRepo.AssertExpectations(t)
	shopRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestShopPayoutCommandHandler_Handle_OverdrawIsClamped(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewShopPayoutCommand(1, 40_001, 100_000)
	require.NoError(t, err)

	owner := customerWithBalance(t, 0)
	payingShop := shopWithRevenue(t, 1, 45_500)

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ShopRepository").Return(shopRepo).Once()
	shopRepo.On("Get", ctx, uint64(40_001)).Return(payingShop, nil).Once()
	userRepo.On("Get", ctx, uint64(1)).Return(owner, nil).Once()
	shopRepo.On("Update", ctx, payingShop).Return(nil).Once()
	userRepo.On("Update", ctx, owner).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewShopPayoutCommandHandler(factory)
	paid, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 45_500.0, paid, 0.001)
	assert.InDelta(t, 0.0, payingShop.Revenue(), 0.001)
	assert.InDelta(t, 45_500.0, owner.Balance(), 0.001)
}

func TestShopPayoutCommandHandler_Handle_NotShopOwner(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewShopPayoutCommand(5, 40_001, 30_000)
	require.NoError(t, err)

	payingShop := shopWithRevenue(t, 1, 45_500)

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		shopRepo.On("Get", ctx, uint64(40_001)).Return(payingShop, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewShopPayoutCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotShopOwner)
	assert.InDelta(t, 45_500.0, payingShop.Revenue(), 0.001)
	uow.AssertNotCalled(t, "Commit", ctx)
}
