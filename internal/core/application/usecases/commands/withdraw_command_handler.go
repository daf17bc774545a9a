package commands

import (
	"context"
)

// WithdrawCommandHandler handles the business logic for balance withdrawals.
// Withdrawals never overdraw: the returned amount is what actually left the
// balance, which may be less than requested.
type WithdrawCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewWithdrawCommandHandler creates a handler for withdrawal operations.
func NewWithdrawCommandHandler(uowFactory UserUoWFactory) WithdrawCommandHandler {
	return WithdrawCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command and returns the amount withdrawn.
func (h WithdrawCommandHandler) Handle(ctx context.Context, cmd WithdrawCommand) (float64, error) {
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

	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return 0, err
	}

	withdrawn := account.Withdraw(cmd.Amount())

	if err = userRepo.Update(ctx, account); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return withdrawn, nil
}
