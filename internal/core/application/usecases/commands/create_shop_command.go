package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateShopCommandIsNotConstructed = errors.New(
		"CreateShopCommand must be created via NewCreateShopCommand constructor",
	)
)

// CreateShopCommand represents a customer's request to open a shop.
// A customer may own at most one shop.
type CreateShopCommand struct { //nolint:recvcheck //using for validation
	ownerID uint64
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateShopCommand creates a command to open a shop for the given customer.
func NewCreateShopCommand(ownerID uint64, name string, address kernel.Address) (CreateShopCommand, error) {
	shopCommand := CreateShopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shopCommand.setOwnerID(ownerID),
		shopCommand.setName(name),
		shopCommand.setAddress(address),
	); err != nil {
		return CreateShopCommand{}, err
	}

	return shopCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShopCommand) Validate() error {
	return c.guard.Validate(ErrCreateShopCommandIsNotConstructed)
}

// OwnerID returns the id of the customer opening the shop.
func (c CreateShopCommand) OwnerID() uint64 {
	return c.ownerID
}

// Name returns the shop's display name.
func (c CreateShopCommand) Name() string {
	return c.name
}

// Address returns the shop's address.
func (c CreateShopCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateShopCommand) setOwnerID(ownerID uint64) error {
	if ownerID == 0 {
		return errs.NewValueIsRequiredError("owner id")
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateShopCommand) setName(name string) error {
	if name == "" {
		return shop.ErrShopNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateShopCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
