// Package cart contains the pre-checkout Cart: a customer-owned mutable
// multiset of (stock item, quantity) picks. A cart never outlives checkout;
// checkout detaches the whole cart as an immutable snapshot and replaces it
// with a fresh empty one.
package cart

import (
	"errors"

	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when using an improperly initialized Cart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Catalog resolves stock item references to their current state.
// Cart totals are computed from current prices, not snapshots, so a cart's
// total can drift if a shop re-prices an item while it sits in the cart.
type Catalog interface {
	StockItem(id uint64) (*shop.StockItem, error)
}

// Cart is the set of a customer's current picks. No two lines reference
// the same stock item: adding an item already in the cart merges into the
// existing line by summing quantities.
type Cart struct {
	lines []*Line
	guard guard.ConstructorGuard
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		lines: make([]*Line, 0),
		guard: guard.NewConstructorGuard(),
	}
}

// RestoreCart reconstructs a cart from persisted lines.
func RestoreCart(lines []*Line) (*Cart, error) {
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return &Cart{
		lines: lines,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Cart instance was properly constructed.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// AddLine puts quantity units of the given stock item into the cart.
// Fails with ErrInvalidQuantity if quantity is non-positive or exceeds the
// item's currently available stock. If a line referencing the same stock
// item already exists, its quantity is increased instead of inserting a
// second line; the merged quantity is clamped to the item's currently
// available stock, so a cart never asks for more than the shelf holds at
// the time of the pick.
func (c *Cart) AddLine(id uint64, item *shop.StockItem, quantity int) error {
	line, err := NewLine(id, item, quantity)
	if err != nil {
		return err
	}

	for _, existing := range c.lines {
		if existing.stockItemID == line.stockItemID {
			existing.quantity = min(existing.quantity+line.quantity, item.Quantity())
			return nil
		}
	}

	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine takes quantity units of the referenced stock item out of the
// cart. A negative quantity is a no-op. If the removal consumes the whole
// line, the line is deleted.
func (c *Cart) RemoveLine(stockItemID uint64, quantity int) {
	if quantity < 0 {
		return
	}

	for idx, line := range c.lines {
		if line.stockItemID != stockItemID {
			continue
		}
		if line.quantity <= quantity {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return
		}
		line.quantity -= quantity
		if line.quantity <= 0 {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		}
		return
	}
}

// DropLine deletes the line referencing the stock item unconditionally.
func (c *Cart) DropLine(stockItemID uint64) {
	for idx, line := range c.lines {
		if line.stockItemID == stockItemID {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			return
		}
	}
}

// TotalPrice sums unit price times quantity over all lines, reading each
// referenced stock item's current price through the catalog.
func (c *Cart) TotalPrice(catalog Catalog) (float64, error) {
	var total float64
	for _, line := range c.lines {
		item, err := catalog.StockItem(line.stockItemID)
		if err != nil {
			return 0, err
		}
		total += item.Price() * float64(line.quantity)
	}
	return total, nil
}

// Contains reports whether the cart holds a line for the given stock item.
func (c *Cart) Contains(stockItemID uint64) bool {
	for _, line := range c.lines {
		if line.stockItemID == stockItemID {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the cart's lines.
func (c *Cart) Lines() []*Line {
	return c.lines
}
