package cart

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
	// ErrInvalidQuantity is returned when a pick's quantity is non-positive
	// or exceeds the stock available at the moment it is added.
	ErrInvalidQuantity = errors.New("invalid quantity for cart line")
)

// Line is a single pick in a cart: a stock item reference plus a quantity.
// Lines are keyed by a surrogate id rather than by the stock item id, so
// merging two picks of the same item is an explicit lookup-and-combine.
//
// The owning shop id is denormalized from the stock item at creation time
// so the checkout splitter can group lines without following pointers
// across aggregates.
type Line struct {
	// id is the surrogate identifier of the line
	id uint64

	// stockItemID references the picked stock item
	stockItemID uint64

	// shopID is the owning shop of the referenced stock item
	shopID uint64

	// quantity is the number of units picked
	quantity int

	// guard ensures the line was created via NewLine
	guard guard.ConstructorGuard
}

// NewLine creates a cart line for the given stock item.
// The quantity must be positive and must not exceed the item's available
// stock at this moment; later merges are not re-clamped.
func NewLine(id uint64, item *shop.StockItem, quantity int) (*Line, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > item.Quantity() {
		return nil, fmt.Errorf("%w: %d of %d available", ErrInvalidQuantity, quantity, item.Quantity())
	}
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("cart line id")
	}

	return &Line{
		id:          id,
		stockItemID: item.ID(),
		shopID:      item.ShopID(),
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreLine reconstructs a cart line from persistent storage without
// re-checking stock availability: availability was validated when the
// pick was made, and stock may legitimately have moved since.
func RestoreLine(id uint64, stockItemID uint64, shopID uint64, quantity int) (*Line, error) {
	if id == 0 || stockItemID == 0 || shopID == 0 {
		return nil, errs.NewValueIsRequiredError("cart line identifiers")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	return &Line{
		id:          id,
		stockItemID: stockItemID,
		shopID:      shopID,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line's surrogate identifier.
func (l *Line) ID() uint64 {
	return l.id
}

// StockItemID returns the referenced stock item's id.
func (l *Line) StockItemID() uint64 {
	return l.stockItemID
}

// ShopID returns the id of the shop owning the referenced stock item.
func (l *Line) ShopID() uint64 {
	return l.shopID
}

// Quantity returns the number of units picked.
func (l *Line) Quantity() int {
	return l.quantity
}
