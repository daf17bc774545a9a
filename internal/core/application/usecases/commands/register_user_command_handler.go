package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// ErrUsernameTaken is returned when the requested username is already registered.
var ErrUsernameTaken = errors.New("username is already taken")

// RegisterUserCommandHandler handles the business logic for user registration.
// Allocates an id from the user sequence and enforces username uniqueness.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	ids        kernel.IDGenerator
}

// NewRegisterUserCommandHandler creates a handler for user registration operations.
// Requires a UserUoWFactory for transactional persistence and an id generator
// drawing from the user id sequence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, ids kernel.IDGenerator) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
	}
}

// Handle processes the registration command and returns the new user's id.
// Returns ErrUsernameTaken when the login name already exists.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (uint64, error) {
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

	_, err := userRepo.GetByUsername(ctx, cmd.Username())
	if err == nil {
		return 0, ErrUsernameTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}

	newUser, err := user.NewUser(
		h.ids.Next(),
		cmd.Username(),
		cmd.Password(),
		cmd.Name(),
		cmd.Phone(),
		cmd.Address(),
		cmd.Role(),
	)
	if err != nil {
		return 0, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newUser.ID(), nil
}
