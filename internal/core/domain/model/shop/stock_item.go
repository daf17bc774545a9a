package shop

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrStockItemIsNotConstructed is returned when using an improperly initialized StockItem.
	ErrStockItemIsNotConstructed = errors.New("StockItem must be created via NewStockItem constructor")
	// ErrProductNameIsRequired is returned when attempting to create a stock item without a name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
	// ErrNotEnoughStock is returned when a decrement would drive the available quantity negative.
	ErrNotEnoughStock = errors.New("not enough stock available")
)

// StockItem is a priced, quantity-tracked product owned by exactly one shop.
// It lives inside the Shop aggregate; the owning shop id is carried as a
// plain identifier, never as an owning pointer.
//
// StockItem follows these invariants:
//   - Unit price is positive at creation (re-pricing must stay positive)
//   - Available quantity is never negative
//   - The owning shop never changes after creation
type StockItem struct {
	// id is the unique identifier for the stock item
	id uint64

	// name is the product's display name
	name string

	// price is the current unit price; cart totals read it live, so
	// re-pricing drifts carts that already reference the item
	price float64

	// quantity is the number of units currently available
	quantity int

	// shopID identifies the owning shop
	shopID uint64

	// guard ensures the stock item was created via NewStockItem
	guard guard.ConstructorGuard
}

// NewStockItem creates a stock item owned by the given shop.
// Name must be non-empty, price positive, and quantity non-negative.
func NewStockItem(id uint64, name string, price float64, quantity int, shopID uint64) (*StockItem, error) {
	item := &StockItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
		item.setShopID(shopID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreStockItem reconstructs a stock item from persistent storage.
// It applies the same validation as NewStockItem.
func RestoreStockItem(id uint64, name string, price float64, quantity int, shopID uint64) (*StockItem, error) {
	return NewStockItem(id, name, price, quantity, shopID)
}

// Validate ensures the StockItem instance was properly constructed.
func (i *StockItem) Validate() error {
	if i == nil {
		return ErrStockItemIsNotConstructed
	}
	return i.guard.Validate(ErrStockItemIsNotConstructed)
}

// ID returns the stock item's unique identifier.
func (i *StockItem) ID() uint64 {
	return i.id
}

// Name returns the product name.
func (i *StockItem) Name() string {
	return i.name
}

// Price returns the current unit price.
func (i *StockItem) Price() float64 {
	return i.price
}

// Quantity returns the number of units currently available.
func (i *StockItem) Quantity() int {
	return i.quantity
}

// ShopID returns the identifier of the owning shop.
func (i *StockItem) ShopID() uint64 {
	return i.shopID
}

// SetPrice re-prices the item. The new price must be positive.
// Carts referencing the item pick up the new price on their next total.
func (i *StockItem) SetPrice(price float64) error {
	return i.setPrice(price)
}

// Decrement reduces the available quantity by the purchased amount.
// Fails with ErrNotEnoughStock if the decrement would oversell, leaving
// the quantity unchanged.
func (i *StockItem) Decrement(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	if amount > i.quantity {
		return ErrNotEnoughStock
	}
	i.quantity -= amount
	return nil
}

// Replenish adds units back to the available quantity.
func (i *StockItem) Replenish(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	i.quantity += amount
	return nil
}

func (i *StockItem) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("stock item id")
	}
	i.id = id
	return nil
}

func (i *StockItem) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	i.name = name
	return nil
}

func (i *StockItem) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *StockItem) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is negative", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *StockItem) setShopID(shopID uint64) error {
	if shopID == 0 {
		return errs.NewValueIsRequiredError("shop id")
	}
	i.shopID = shopID
	return nil
}
