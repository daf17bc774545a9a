package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrWithdrawCommandIsNotConstructed = errors.New(
		"WithdrawCommand must be created via NewWithdrawCommand constructor",
	)
)

// WithdrawCommand represents a request to take money out of a user's balance.
// The amount actually withdrawn is clamped to the available balance, so any
// requested amount passes command validation.
type WithdrawCommand struct { //nolint:recvcheck //using for validation
	userID uint64
	amount float64

	guard guard.ConstructorGuard
}

// NewWithdrawCommand creates a command to withdraw up to the given amount.
func NewWithdrawCommand(userID uint64, amount float64) (WithdrawCommand, error) {
	withdrawCommand := WithdrawCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := withdrawCommand.setUserID(userID); err != nil {
		return WithdrawCommand{}, err
	}

	withdrawCommand.amount = amount
	return withdrawCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawCommandIsNotConstructed)
}

// UserID returns the id of the account to debit.
func (c WithdrawCommand) UserID() uint64 {
	return c.userID
}

// Amount returns the requested withdrawal amount.
func (c WithdrawCommand) Amount() float64 {
	return c.amount
}

func (c *WithdrawCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("user id")
	}

	c.userID = userID
	return nil
}
