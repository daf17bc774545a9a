package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrDepositCommandIsNotConstructed = errors.New(
		"DepositCommand must be created via NewDepositCommand constructor",
	)
)

// DepositCommand represents a request to add money to a user's balance.
type DepositCommand struct { //nolint:recvcheck //using for validation
	userID uint64
	amount float64

	guard guard.ConstructorGuard
}

// NewDepositCommand creates a command to deposit a positive amount.
func NewDepositCommand(userID uint64, amount float64) (DepositCommand, error) {
	depositCommand := DepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		depositCommand.setUserID(userID),
		depositCommand.setAmount(amount),
	); err != nil {
		return DepositCommand{}, err
	}

	return depositCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DepositCommand) Validate() error {
	return c.guard.Validate(ErrDepositCommandIsNotConstructed)
}

// UserID returns the id of the account to credit.
func (c DepositCommand) UserID() uint64 {
	return c.userID
}

// Amount returns the amount to deposit.
func (c DepositCommand) Amount() float64 {
	return c.amount
}

func (c *DepositCommand) setUserID(userID uint64) error {
	if userID == 0 {
		return errs.NewValueIsRequiredError("user id")
	}

	c.userID = userID
	return nil
}

func (c *DepositCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	c.amount = amount
	return nil
}
