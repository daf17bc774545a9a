package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uint64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetShippersByCity(ctx context.Context, city kernel.City) ([]*user.User, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockShopRepository struct{ mock.Mock }

func (m *MockShopRepository) Add(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Update(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Get(ctx context.Context, id uint64) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) GetByStockItem(ctx context.Context, stockItemID uint64) (*shop.Shop, error) {
	args := m.Called(ctx, stockItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) GetAll(ctx context.Context) ([]*shop.Shop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shop.Shop), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID uint64) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByShipper(ctx context.Context, shipperID uint64) ([]*order.Order, error) {
	args := m.Called(ctx, shipperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByShop(ctx context.Context, shopID uint64) ([]*order.Order, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetClaimableInCity(ctx context.Context, city kernel.City) ([]*order.Order, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetFirstAtWarehouse(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Get(ctx context.Context) (*ledger.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) Update(ctx context.Context, l *ledger.Ledger) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ShopRepository() ports.ShopRepository {
	args := m.Called()
	return args.Get(0).(ports.ShopRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func marketAddress(t *testing.T, city kernel.City) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("3 Le Loi", city)
	require.NoError(t, err)
	return addr
}

func customerWithBalance(t *testing.T, balance float64) *user.User {
	t.Helper()
	u, err := user.NewUser(1, "linh", "s3cret", "Linh Tran", "0912345678",
		marketAddress(t, kernel.Hanoi), user.Customer)
	require.NoError(t, err)
	require.NoError(t, u.Deposit(balance))
	return u
}

func shopWithItem(t *testing.T, shopID, itemID uint64, price float64, quantity int) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop(shopID, 9, "Tea Corner", marketAddress(t, kernel.DaNang))
	require.NoError(t, err)
	_, err = s.AddItem(itemID, "Green tea", price, quantity)
	require.NoError(t, err)
	return s
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(1)
	require.NoError(t, err)

	customer := customerWithBalance(t, 100_000)
	testShop := shopWithItem(t, 40_001, 30_001, 25_000, 10)
	item, _ := testShop.StockItem(30_001)
	customerCart, _ := customer.Cart()
	require.NoError(t, customerCart.AddLine(50_001, item, 2))

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	platformLedger := ledger.NewLedger()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		userRepo.On("Get", ctx, uint64(1)).Return(customer, nil).Once(),
		shopRepo.On("GetAll", ctx).Return([]*shop.Shop{testShop}, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		shopRepo.On("Update", ctx, testShop).Return(nil).Once(),
		ledgerRepo.On("Get", ctx).Return(platformLedger, nil).Once(),
		ledgerRepo.On("Update", ctx, platformLedger).Return(nil).Once(),
		userRepo.On("Update", ctx, customer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	orderIDs, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, orderIDs, 1)
	assert.Equal(t, uint64(10_001), orderIDs[0])

	// Customer was debited, stock decremented, profit accrued.
	assert.InDelta(t, 50_000.0, customer.Balance(), 0.001)
	assert.Equal(t, 8, item.Quantity())
	assert.InDelta(t, 4_500.0, platformLedger.Profit(), 0.001)

	// The fresh cart replacing the detached one is empty.
	freshCart, _ := customer.Cart()
	assert.True(t, freshCart.IsEmpty())

	createdOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, uint64(40_001), createdOrder.ShopID())
	assert.Equal(t, order.Created, createdOrder.Status())
	assert.True(t, createdOrder.Location().IsEqual(testShop.Address()))
	assert.InDelta(t, 50_000.0, createdOrder.TotalPrice(), 0.001)

	userRepo.AssertExpectations(t)
	shopRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_SplitsByShop(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(1)
	require.NoError(t, err)

	customer := customerWithBalance(t, 200_000)
	teaShop := shopWithItem(t, 40_001, 30_001, 25_000, 10)
	bookShop := shopWithItem(t, 40_002, 30_002, 15_000, 10)
	teaItem, _ := teaShop.StockItem(30_001)
	bookItem, _ := bookShop.StockItem(30_002)
	customerCart, _ := customer.Cart()
	require.NoError(t, customerCart.AddLine(50_001, teaItem, 2))
	require.NoError(t, customerCart.AddLine(50_002, bookItem, 1))

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ShopRepository").Return(shopRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("LedgerRepository").Return(ledgerRepo).Once()
	userRepo.On("Get", ctx, uint64(1)).Return(customer, nil).Once()
	shopRepo.On("GetAll", ctx).Return([]*shop.Shop{teaShop, bookShop}, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	shopRepo.On("Update", ctx, mock.AnythingOfType("*shop.Shop")).Return(nil).Twice()
	ledgerRepo.On("Get", ctx).Return(ledger.NewLedger(), nil).Once()
	ledgerRepo.On("Update", ctx, mock.AnythingOfType("*ledger.Ledger")).Return(nil).Once()
	userRepo.On("Update", ctx, customer).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	orderIDs, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, orderIDs, 2)

	// One order per shop, split deterministically by shop id.
	firstOrder := orderRepo.Calls[0].Arguments[1].(*order.Order)
	secondOrder := orderRepo.Calls[1].Arguments[1].(*order.Order)
	assert.Equal(t, uint64(40_001), firstOrder.ShopID())
	assert.InDelta(t, 50_000.0, firstOrder.TotalPrice(), 0.001)
	assert.Equal(t, uint64(40_002), secondOrder.ShopID())
	assert.InDelta(t, 15_000.0, secondOrder.TotalPrice(), 0.001)

	assert.InDelta(t, 135_000.0, customer.Balance(), 0.001)
	orderRepo.AssertExpectations(t)
	shopRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(1)
	require.NoError(t, err)

	customer := customerWithBalance(t, 100_000)

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		uow.On("ShopRepository").Return(shopRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		userRepo.On("Get", ctx, uint64(1)).Return(customer, nil).Once(),
		shopRepo.On("GetAll", ctx).Return([]*shop.Shop{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrEmptyCart)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCheckoutCommandHandler_Handle_InsufficientBalance(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(1)
	require.NoError(t, err)

	customer := customerWithBalance(t, 10_000)
	testShop := shopWithItem(t, 40_001, 30_001, 25_000, 10)
	item, _ := testShop.StockItem(30_001)
	customerCart, _ := customer.Cart()
	require.NoError(t, customerCart.AddLine(50_001, item, 2))

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ShopRepository").Return(shopRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("LedgerRepository").Return(ledgerRepo).Once()
	userRepo.On("Get", ctx, uint64(1)).Return(customer, nil).Once()
	shopRepo.On("GetAll", ctx).Return([]*shop.Shop{testShop}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, user.ErrInsufficientBalance)
	assert.InDelta(t, 10_000.0, customer.Balance(), 0.001)
	assert.Equal(t, 10, item.Quantity())
}

func TestCheckoutCommandHandler_Handle_NotEnoughStock(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(1)
	require.NoError(t, err)

	// A persisted pick can legitimately exceed what is on the shelf today.
	oversizedLine, err := cart.RestoreLine(50_001, 30_001, 40_001, 50)
	require.NoError(t, err)
	restoredCart, err := cart.RestoreCart([]*cart.Line{oversizedLine})
	require.NoError(t, err)
	customer, err := user.RestoreUser(1, "linh", "s3cret", "Linh Tran", "0912345678",
		marketAddress(t, kernel.Hanoi), user.Customer, 2_000_000, restoredCart, nil)
	require.NoError(t, err)

	testShop := shopWithItem(t, 40_001, 30_001, 25_000, 10)

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ShopRepository").Return(shopRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("LedgerRepository").Return(ledgerRepo).Once()
	userRepo.On("Get", ctx, uint64(1)).Return(customer, nil).Once()
	shopRepo.On("GetAll", ctx).Return([]*shop.Shop{testShop}, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, shop.ErrNotEnoughStock)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCheckoutCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(1)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCheckoutCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCheckoutCommand(1)
	require.NoError(t, err)

	customer := customerWithBalance(t, 100_000)
	testShop := shopWithItem(t, 40_001, 30_001, 25_000, 10)
	item, _ := testShop.StockItem(30_001)
	customerCart, _ := customer.Cart()
	require.NoError(t, customerCart.AddLine(50_001, item, 2))

	userRepo := new(MockUserRepository)
	shopRepo := new(MockShopRepository)
	orderRepo := new(MockOrderRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ShopRepository").Return(shopRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("LedgerRepository").Return(ledgerRepo).Once()
	userRepo.On("Get", ctx, uint64(1)).Return(customer, nil).Once()
	shopRepo.On("GetAll", ctx).Return([]*shop.Shop{testShop}, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	shopRepo.On("Update", ctx, testShop).Return(nil).Once()
	ledgerRepo.On("Get", ctx).Return(ledger.NewLedger(), nil).Once()
	ledgerRepo.On("Update", ctx, mock.AnythingOfType("*ledger.Ledger")).Return(nil).Once()
	userRepo.On("Update", ctx, customer).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, kernel.NewSequence(kernel.OrderIDBand), 0.09)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
