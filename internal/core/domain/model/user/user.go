package user

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	// ErrUsernameIsRequired is returned when attempting to create a user without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordIsRequired is returned when attempting to create a user without a password.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
	// ErrNameIsRequired is returned when attempting to create a user without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a user without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrInsufficientBalance is returned when a checkout total exceeds the customer's balance.
	ErrInsufficientBalance = errors.New("not enough balance")
	// ErrNotACustomer is returned when a customer-only operation is invoked on a shipper.
	ErrNotACustomer = errors.New("user is not a customer")
	// ErrAlreadyOwnsShop is returned when a customer who already owns a shop tries to open another.
	ErrAlreadyOwnsShop = errors.New("customer already owns a shop")
)

// User is the aggregate root for a marketplace account. A single type
// covers both roles: customers additionally own a cart and optionally one
// shop; shippers carry nothing extra beyond the shared attributes.
//
// Business rules:
//   - Username is unique across all users (registry key) and immutable
//   - Balance is never negative: withdrawals clamp to the available
//     balance, and checkout refuses totals above it
//   - Orders are not held on the user; the central order registry is
//     queried by customer or shipper id instead
type User struct {
	// id is the unique identifier for the user
	id uint64

	// username is the immutable global registry key
	username string

	// password is the stored credential; hashing is the responsibility
	// of the surrounding system
	password string

	// name is the display name
	name string

	// phone is the contact number
	phone string

	// address is the user's home address; for shippers its city is the
	// city they operate in
	address kernel.Address

	// balance is the account's money, never negative
	balance float64

	// role tags the account as Customer or Shipper
	role Role

	// cart holds the customer's current picks (nil for shippers)
	cart *cart.Cart

	// ownedShopID references the customer's shop, if any
	ownedShopID *uint64

	// guard ensures the user was created via NewUser
	guard guard.ConstructorGuard
}

// NewUser creates a user account with a zero balance. Customers start
// with an empty cart and no shop.
func NewUser(
	id uint64,
	username string,
	password string,
	name string,
	phone string,
	address kernel.Address,
	role Role,
) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPassword(password),
		u.setName(name),
		u.setPhone(phone),
		u.setAddress(address),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if u.role == Customer {
		u.cart = cart.NewCart()
	}
	return u, nil
}

// RestoreUser reconstructs a user aggregate from persistent storage,
// including balance, cart contents, and shop ownership.
func RestoreUser(
	id uint64,
	username string,
	password string,
	name string,
	phone string,
	address kernel.Address,
	role Role,
	balance float64,
	restored *cart.Cart,
	ownedShopID *uint64,
) (*User, error) {
	u, err := NewUser(id, username, password, name, phone, address, role)
	if err != nil {
		return nil, err
	}

	if balance < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("balance is invalid",
			fmt.Errorf("%v is negative", balance))
	}
	u.balance = balance

	if u.role == Customer {
		if restored != nil {
			if err = restored.Validate(); err != nil {
				return nil, err
			}
			u.cart = restored
		}
		u.ownedShopID = ownedShopID
	}
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id == other.id
}

// ID returns the user's unique identifier.
func (u *User) ID() uint64 {
	return u.id
}

// Username returns the immutable registry key.
func (u *User) Username() string {
	return u.username
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the contact number.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the user's address.
func (u *User) Address() kernel.Address {
	return u.address
}

// Balance returns the account balance.
func (u *User) Balance() float64 {
	return u.balance
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// Password returns the stored credential for persistence.
func (u *User) Password() string {
	return u.password
}

// OwnedShopID returns the customer's shop reference, or nil.
func (u *User) OwnedShopID() *uint64 {
	return u.ownedShopID
}

// Authenticate reports whether the supplied password matches.
func (u *User) Authenticate(password string) bool {
	return u.password == password
}

// ChangePassword replaces the stored credential.
func (u *User) ChangePassword(password string) error {
	return u.setPassword(password)
}

// ChangePhone replaces the contact number.
func (u *User) ChangePhone(phone string) error {
	return u.setPhone(phone)
}

// Relocate changes the user's address.
func (u *User) Relocate(address kernel.Address) error {
	return u.setAddress(address)
}

// Deposit adds money to the balance. Negative amounts are rejected.
func (u *User) Deposit(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%v is negative", amount))
	}
	u.balance += amount
	return nil
}

// Withdraw removes up to amount from the balance and returns the amount
// actually withdrawn, clamped to [0, balance]. It never fails and never
// overdraws.
func (u *User) Withdraw(amount float64) float64 {
	possible := kernel.Clamp(amount, 0, u.balance)
	u.balance -= possible
	return possible
}

// Cart returns the customer's live cart.
func (u *User) Cart() (*cart.Cart, error) {
	if u.role != Customer {
		return nil, ErrNotACustomer
	}
	return u.cart, nil
}

// Checkout detaches the current cart and debits the balance by the given
// total (computed by the caller from current prices). The live cart is
// swapped for a fresh empty one, never cleared in place: ownership of the
// returned snapshot transfers to the order-creation step, and references
// held to the pre-checkout cart stay valid.
//
// Fails with ErrInsufficientBalance if the total exceeds the balance, and
// leaves both cart and balance untouched in that case.
func (u *User) Checkout(total float64) (*cart.Cart, error) {
	if u.role != Customer {
		return nil, ErrNotACustomer
	}
	if total > u.balance {
		return nil, ErrInsufficientBalance
	}

	detached := u.cart
	u.cart = cart.NewCart()
	u.balance -= total
	return detached, nil
}

// AssignShop records shop ownership for a customer. A customer owns at
// most one shop for their whole lifetime.
func (u *User) AssignShop(shopID uint64) error {
	if u.role != Customer {
		return ErrNotACustomer
	}
	if u.ownedShopID != nil {
		return ErrAlreadyOwnsShop
	}
	if shopID == 0 {
		return errs.NewValueIsRequiredError("shop id")
	}
	u.ownedShopID = &shopID
	return nil
}

func (u *User) setID(id uint64) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("user id")
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	u.username = username
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	u.password = password
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	u.phone = phone
	return nil
}

func (u *User) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	u.address = address
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
