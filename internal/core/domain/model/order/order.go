package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Location placeholders used while an order is between fixed addresses.
const (
	// shippingPlaceholder is the address line while a shipper carries the order.
	shippingPlaceholder = "Shipping"
	// warehousePlaceholder is the address line while the order waits at a relay warehouse.
	warehousePlaceholder = "The warehouse"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrNotClaimable is returned when a shipper tries to claim an order that is not
	// waiting in the shipper's city, or not in a claimable status.
	ErrNotClaimable = errors.New("order is not claimable by this shipper")
	// ErrNotOrderShipper is returned when a shipper other than the assigned one
	// tries to finish an order.
	ErrNotOrderShipper = errors.New("order does not belong to this shipper")
)

// Order is an immutable snapshot of one shop's share of a checkout, plus
// mutable delivery state. All lines belong to exactly one shop - enforced
// by construction (the splitter builds per-shop contents before any order
// exists) and never re-validated afterwards.
//
// Order follows these invariants:
//   - totalPrice is fixed at creation and never recomputed, even if the
//     referenced stock items are later re-priced
//   - status transitions follow the delivery state machine in Status
//   - customer, shop and shipper are referenced by id into the central
//     registries, never as owning pointers
//
// Orders are never deleted; they are retained indefinitely as audit
// records and looked up by customer, shop, or shipper id.
type Order struct {
	// id is the unique identifier for the order
	id uint64

	// orderedAt is the checkout timestamp
	orderedAt time.Time

	// customerID identifies the buying customer
	customerID uint64

	// shopID identifies the single shop all lines belong to
	shopID uint64

	// shipperID is the currently assigned shipper (nil between legs)
	shipperID *uint64

	// status is the current state in the delivery lifecycle
	status Status

	// location is where the order physically is right now; starts at the
	// shop's address and ends at the customer's
	location kernel.Address

	// totalPrice is the shop subtotal snapshotted at checkout
	totalPrice float64

	// lines are the merged per-product purchase quantities
	lines []Line

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard
}

// NewOrder creates an order in Created status located at the shop's address.
// The lines and total are a snapshot produced by the checkout splitter; the
// constructor trusts that they all belong to shopID.
func NewOrder(
	id uint64,
	orderedAt time.Time,
	customerID uint64,
	shopID uint64,
	shopAddress kernel.Address,
	lines []Line,
	totalPrice float64,
) (*Order, error) {
	o := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderedAt(orderedAt),
		o.setCustomerID(customerID),
		o.setShopID(shopID),
		o.setLocation(shopAddress),
		o.setLines(lines),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage,
// preserving its delivery state, location, and shipper assignment.
func RestoreOrder(
	id uint64,
	orderedAt time.Time,
	customerID uint64,
	shopID uint64,
	location kernel.Address,
	lines []Line,
	totalPrice float64,
	status Status,
	shipperID *uint64,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderedAt(orderedAt),
		o.setCustomerID(customerID),
		o.setShopID(shopID),
		o.setLocation(location),
		o.setLines(lines),
		o.setTotalPrice(totalPrice),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.shipperID = shipperID
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() uint64 {
	return o.id
}

// OrderedAt returns the checkout timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// CustomerID returns the buying customer's id.
func (o *Order) CustomerID() uint64 {
	return o.customerID
}

// ShopID returns the id of the shop all lines belong to.
func (o *Order) ShopID() uint64 {
	return o.shopID
}

// ShipperID returns the assigned shipper's id, or nil between delivery legs.
func (o *Order) ShipperID() *uint64 {
	return o.shipperID
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// Location returns the order's current physical location.
func (o *Order) Location() kernel.Address {
	return o.location
}

// TotalPrice returns the shop subtotal snapshotted at checkout.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Lines returns the order's merged purchase lines.
func (o *Order) Lines() []Line {
	return o.lines
}

// Accept acknowledges the order on behalf of its shop.
// Only valid in Created status.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Claim assigns the order to a shipper for the next delivery leg.
//
// Business rules:
//   - The order must be waiting at the shop (ShopAccepted) or at a relay
//     warehouse (AtWarehouse)
//   - The shipper's city must match the order's current location city
//
// On success the order moves to Shipping at a "Shipping" placeholder
// located in the shop's city.
func (o *Order) Claim(shipperID uint64, shipperCity kernel.City, shopCity kernel.City) error {
	if shipperID == 0 {
		return errs.NewValueIsRequiredError("shipper id")
	}
	if o.status.ValidateClaim() != nil || shipperCity != o.location.City() {
		return ErrNotClaimable
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	inTransit, err := kernel.NewAddress(shippingPlaceholder, shopCity)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.location = inTransit
	o.shipperID = &shipperID
	return nil
}

// Finish completes the assigned shipper's delivery leg.
//
// Business rules:
//   - The order must be in Shipping status
//   - Only the assigned shipper may finish the leg
//
// If the destination city matches the shipper's own city the order is
// Delivered at the destination address. Otherwise it is handed off to a
// relay warehouse in the destination city (AtWarehouse), waiting for a
// local shipper to claim the final leg. Either way the shipper reference
// is cleared; crediting the shipper's fee is the caller's responsibility.
//
// Returns delivered=true when the order reached the customer.
func (o *Order) Finish(shipperID uint64, shipperCity kernel.City, destination kernel.Address) (bool, error) {
	if o.status != Shipping {
		return false, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to finish", o.status.String()))
	}
	if o.shipperID == nil || *o.shipperID != shipperID {
		return false, ErrNotOrderShipper
	}
	if err := destination.Validate(); err != nil {
		return false, err
	}

	if destination.City() == shipperCity {
		newStatus, err := o.status.Deliver()
		if err != nil {
			return false, err
		}
		o.status = newStatus
		o.location = destination
		o.shipperID = nil
		return true, nil
	}

	newStatus, err := o.status.HandOff()
	if err != nil {
		return false, err
	}
	warehouse, err := kernel.NewAddress(warehousePlaceholder, destination.City())
	if err != nil {
		return false, err
	}
	o.status = newStatus
	o.location = warehouse
	o.shipperID = nil
	return false, nil
}

// Confirm records the customer's receipt confirmation.
// Only valid in Delivered status; confirming twice fails on the second
// attempt, so revenue is never double-credited by the caller.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setOrderedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("ordered at")
	}
	o.orderedAt = t
	return nil
}

func (o *Order) setCustomerID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = id
	return nil
}

func (o *Order) setShopID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("shop id")
	}
	o.shopID = id
	return nil
}

func (o *Order) setLocation(location kernel.Address) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.location = location
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	o.lines = lines
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%v is not greater than 0", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
