package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Created ──> ShopAccepted ──> Shipping ──> Delivered ──> CustomerConfirmed
//	                  │             │  ▲
//	                  │             ▼  │
//	                  └────── AtWarehouse
//	            (warehouse hop: a relayed order is claimed again)
//
// Transitions are strictly forward apart from the warehouse detour: an
// order dropped at a warehouse re-enters Shipping when a shipper in the
// destination city claims it. CustomerConfirmed is the final state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned at checkout.
	// Orders in this status are waiting for the shop to accept them.
	Created

	// ShopAccepted indicates the shop has acknowledged the order.
	// Orders in this status are waiting for a shipper in the shop's city.
	ShopAccepted

	// Shipping indicates a shipper is carrying the order.
	Shipping

	// AtWarehouse indicates the order was dropped at a relay warehouse in
	// the destination city, waiting for a local shipper to claim it.
	AtWarehouse

	// Delivered indicates the order reached the customer's address.
	// Orders in this status are waiting for the customer to confirm.
	Delivered

	// CustomerConfirmed indicates the customer confirmed receipt.
	// This is a final state; shop revenue is credited on this transition.
	CustomerConfirmed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "Unknown",
		Created:           "Created",
		ShopAccepted:      "Shop accepted",
		Shipping:          "Shipping",
		AtWarehouse:       "At warehouse",
		Delivered:         "Delivered",
		CustomerConfirmed: "Customer confirmed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:           "Created",
		ShopAccepted:      "Shop accepted",
		Shipping:          "Shipping",
		AtWarehouse:       "At warehouse",
		Delivered:         "Delivered",
		CustomerConfirmed: "Customer confirmed",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateClaim checks if the status allows a shipper claim without
// performing the transition. Orders are claimable when they are waiting
// at the shop (ShopAccepted) or at a relay warehouse (AtWarehouse).
func (s Status) ValidateClaim() error {
	if s != ShopAccepted && s != AtWarehouse {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to claim", s.String()),
		)
	}
	return nil
}

// Accept transitions the status to ShopAccepted.
//
// Valid transitions:
//   - Created -> ShopAccepted
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Accept() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return ShopAccepted, nil
}

// Claim transitions the status to Shipping.
//
// Valid transitions:
//   - ShopAccepted -> Shipping (first delivery leg)
//   - AtWarehouse -> Shipping (relay leg)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Claim() (Status, error) {
	if err := s.ValidateClaim(); err != nil {
		return 0, err
	}
	return Shipping, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipping -> Delivered (shipper's city matches the destination)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if s != Shipping {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// HandOff transitions the status to AtWarehouse.
//
// Valid transitions:
//   - Shipping -> AtWarehouse (destination lies outside the shipper's city)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) HandOff() (Status, error) {
	if s != Shipping {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to hand off", s.String()),
		)
	}
	return AtWarehouse, nil
}

// Confirm transitions the status to CustomerConfirmed.
//
// Valid transitions:
//   - Delivered -> CustomerConfirmed
//
// CustomerConfirmed is a final state with no further transitions.
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Confirm() (Status, error) {
	if s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return CustomerConfirmed, nil
}
