package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly initialized Address.
// Addresses must be created using the NewAddress constructor to ensure validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// ErrAddressLineIsRequired is returned when the free-form address line is empty.
var ErrAddressLineIsRequired = errs.NewValueIsRequiredError("address line")

// Address is an immutable value object combining a free-form address line
// with one of the marketplace's cities. The city component is the only part
// the core logic reasons about: shipping moves an order between addresses,
// and a shipper may only handle an order whose current address is in the
// shipper's own city.
//
// The zero value of Address is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Hang Bai", kernel.Hanoi)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Output: 12 Hang Bai, Hanoi
type Address struct { //nolint:recvcheck //using for validation
	line  string
	city  City
	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the given address line and city.
// The line must be non-empty and the city must belong to the closed city set.
func NewAddress(line string, city City) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setLine(line), addr.setCity(city)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed using the constructor.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Line returns the free-form address line.
func (a Address) Line() string {
	return a.line
}

// City returns the city component of the address.
func (a Address) City() City {
	return a.city
}

// IsEqual compares two addresses for equality. Two addresses are equal if
// they have the same line and the same city.
func (a Address) IsEqual(other Address) bool {
	return a.line == other.line && a.city == other.city
}

// String returns the address in "line, city" display form.
// Implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.line, a.city)
}

func (a *Address) setLine(line string) error {
	if line == "" {
		return ErrAddressLineIsRequired
	}
	a.line = line
	return nil
}

func (a *Address) setCity(city City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	a.city = city
	return nil
}
