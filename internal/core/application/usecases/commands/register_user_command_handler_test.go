package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func registerCommand(t *testing.T, username string, role user.Role) commands.RegisterUserCommand {
	t.Helper()
	cmd, err := commands.NewRegisterUserCommand(username, "s3cret", "Linh Tran",
		"0912345678", marketAddress(t, kernel.Hanoi), role)
	require.NoError(t, err)
	return cmd
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := registerCommand(t, "linh", user.Customer)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", ctx, "linh").
			Return(nil, errs.NewObjectNotFoundError("username", "linh")).Once(),
		userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, kernel.NewSequence(kernel.UserIDBand))
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	registered := userRepo.Calls[1].Arguments[1].(*user.User)
	assert.Equal(t, "linh", registered.Username())
	assert.Equal(t, user.Customer, registered.Role())

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	cmd := registerCommand(t, "linh", user.Customer)

	existing := customerWithBalance(t, 0)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", ctx, "linh").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, kernel.NewSequence(kernel.UserIDBand))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUsernameTaken)
	userRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterUserCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd := registerCommand(t, "linh", user.Shipper)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", ctx, "linh").
			Return(nil, errors.New("connection lost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterUserCommandHandler(factory, kernel.NewSequence(kernel.UserIDBand))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "connection lost")
	userRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly

	factory := new(MockUserUoWFactory)
	handler := commands.NewRegisterUserCommandHandler(factory, kernel.NewSequence(kernel.UserIDBand))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
