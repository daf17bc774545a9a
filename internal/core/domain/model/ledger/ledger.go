// Package ledger contains the platform's profit accumulator. A fixed
// percentage of every checkout total is accrued here; the accumulator is
// append-only and never decremented.
package ledger

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLedgerIsNotConstructed is returned when using an improperly initialized Ledger.
var ErrLedgerIsNotConstructed = errors.New("Ledger must be created via NewLedger constructor")

// Ledger is the platform-wide profit record. There is exactly one ledger
// in the system.
type Ledger struct {
	profit float64
	guard  guard.ConstructorGuard
}

// NewLedger creates a ledger with zero accumulated profit.
func NewLedger() *Ledger {
	return &Ledger{
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreLedger reconstructs the ledger from persistent storage.
func RestoreLedger(profit float64) (*Ledger, error) {
	if profit < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("profit is invalid",
			fmt.Errorf("%v is negative", profit))
	}
	l := NewLedger()
	l.profit = profit
	return l, nil
}

// Validate ensures the Ledger instance was properly constructed.
func (l *Ledger) Validate() error {
	if l == nil {
		return ErrLedgerIsNotConstructed
	}
	return l.guard.Validate(ErrLedgerIsNotConstructed)
}

// Profit returns the accumulated platform profit.
func (l *Ledger) Profit() float64 {
	return l.profit
}

// Accrue adds the platform's cut of a checkout to the accumulator.
// Negative amounts are rejected: profit is never decremented.
func (l *Ledger) Accrue(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%v is negative", amount))
	}
	l.profit += amount
	return nil
}
