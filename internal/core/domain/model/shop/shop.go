package shop

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for shop operations.
var (
	// ErrShopNameIsRequired is returned when attempting to create a shop without a name.
	ErrShopNameIsRequired = errs.NewValueIsRequiredError("shop name")
	// ErrShopIsNotConstructed is returned when using an improperly initialized Shop.
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")
)

// Shop is the aggregate root for a vendor's storefront. It owns the
// vendor's stock items and accumulates delivery-confirmed revenue.
//
// Business rules:
//   - A shop is owned by exactly one customer (carried as an id)
//   - A shop may exist with zero stock
//   - Revenue is clamped to zero on any external set, but plain
//     increments are unguarded (original behavior, preserved verbatim)
//
// Orders reference the shop by id through the central order registry;
// the shop itself holds no order list.
type Shop struct {
	// id is the unique identifier for the shop
	id uint64

	// ownerID identifies the customer who owns the shop
	ownerID uint64

	// name is the storefront's display name
	name string

	// address is the shop's pickup address; its city decides which
	// shippers can claim the first delivery leg
	address kernel.Address

	// stock is the list of items the shop currently sells
	stock []*StockItem

	// revenue is the money credited from customer-confirmed orders
	revenue float64

	// guard ensures the shop was created via NewShop
	guard guard.ConstructorGuard
}

// NewShop creates an empty shop for the given owner.
func NewShop(id uint64, ownerID uint64, name string, address kernel.Address) (*Shop, error) {
	s := &Shop{
		stock: make([]*StockItem, 0),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setName(name),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShop reconstructs a shop aggregate from persistent storage,
// including its stock and accumulated revenue.
func RestoreShop(
	id uint64,
	ownerID uint64,
	name string,
	address kernel.Address,
	stock []*StockItem,
	revenue float64,
) (*Shop, error) {
	s, err := NewShop(id, ownerID, name, address)
	if err != nil {
		return nil, err
	}

	for _, item := range stock {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	s.stock = stock
	s.revenue = revenue
	return s, nil
}

// Validate ensures the Shop instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

// IsEqual compares two shops by their unique identifiers.
func (s *Shop) IsEqual(other *Shop) bool {
	return other != nil && s.id == other.id
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() uint64 {
	return s.id
}

// OwnerID returns the id of the customer who owns the shop.
func (s *Shop) OwnerID() uint64 {
	return s.ownerID
}

// Name returns the storefront name.
func (s *Shop) Name() string {
	return s.name
}

// Address returns the shop's pickup address.
func (s *Shop) Address() kernel.Address {
	return s.address
}

// Revenue returns the accumulated revenue.
func (s *Shop) Revenue() float64 {
	return s.revenue
}

// Stock returns the shop's stock items.
func (s *Shop) Stock() []*StockItem {
	return s.stock
}

// Rename changes the storefront name.
func (s *Shop) Rename(name string) error {
	return s.setName(name)
}

// Relocate changes the shop's pickup address.
func (s *Shop) Relocate(address kernel.Address) error {
	return s.setAddress(address)
}

// AddItem creates a new stock item under this shop. The caller supplies
// the identifier; the operation always succeeds for valid inputs.
func (s *Shop) AddItem(id uint64, name string, price float64, quantity int) (*StockItem, error) {
	item, err := NewStockItem(id, name, price, quantity, s.id)
	if err != nil {
		return nil, err
	}
	s.stock = append(s.stock, item)
	return item, nil
}

// RemoveItem deletes a whole stock item from the shop.
// Returns true if the item was found and removed, false otherwise.
func (s *Shop) RemoveItem(itemID uint64) bool {
	for idx, item := range s.stock {
		if item.ID() == itemID {
			s.stock = append(s.stock[:idx], s.stock[idx+1:]...)
			return true
		}
	}
	return false
}

// StockItem looks up a stock item by id.
func (s *Shop) StockItem(itemID uint64) (*StockItem, bool) {
	for _, item := range s.stock {
		if item.ID() == itemID {
			return item, true
		}
	}
	return nil, false
}

// IncreaseRevenue adds to the accumulated revenue unconditionally.
// A negative amount reduces revenue; there is no guard here, matching
// SetRevenue's asymmetric clamping.
func (s *Shop) IncreaseRevenue(amount float64) {
	s.revenue += amount
}

// SetRevenue replaces the accumulated revenue, clamped to a minimum of zero.
func (s *Shop) SetRevenue(amount float64) {
	s.revenue = max(amount, 0)
}

// Payout withdraws money from the shop's revenue for its owner.
// The withdrawn amount is clamped to the available revenue, so revenue
// never goes negative. Returns the amount actually withdrawn; crediting
// the owner's balance is the caller's responsibility.
func (s *Shop) Payout(amount float64) float64 {
	possible := kernel.Clamp(amount, 0, s.revenue)
	s.revenue -= possible
	return possible
}

func (s *Shop) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("shop id")
	}
	s.id = id
	return nil
}

func (s *Shop) setOwnerID(ownerID uint64) error {
	if ownerID == 0 {
		return errs.NewValueIsRequiredError("owner id")
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shop) setName(name string) error {
	if name == "" {
		return ErrShopNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Shop) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}
