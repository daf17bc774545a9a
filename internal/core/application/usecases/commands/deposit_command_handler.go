package commands

import (
	"context"
)

// DepositCommandHandler handles the business logic for balance deposits.
type DepositCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDepositCommandHandler creates a handler for deposit operations.
func NewDepositCommandHandler(uowFactory UserUoWFactory) DepositCommandHandler {
	return DepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit command.
func (h DepositCommandHandler) Handle(ctx context.Context, cmd DepositCommand) error {
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

	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = account.Deposit(cmd.Amount()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
