package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand represents a request to register a new marketplace user,
// either a customer or a shipper.
//
// Example:
//
//	address, _ := kernel.NewAddress("12 Hang Bac", kernel.Hanoi)
//	cmd, err := NewRegisterUserCommand("linh", "s3cret", "Linh Tran", "0912345678", address, user.Customer)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory, ids)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register user: %w", err)
//	}
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string
	name     string
	phone    string
	address  kernel.Address
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Field presence is validated here; username uniqueness is checked by the handler.
func NewRegisterUserCommand(
	username string,
	password string,
	name string,
	phone string,
	address kernel.Address,
	role user.Role,
) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setUsername(username),
		registerCommand.setPassword(password),
		registerCommand.setName(name),
		registerCommand.setPhone(phone),
		registerCommand.setAddress(address),
		registerCommand.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Username returns the requested login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Password returns the requested password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Name returns the user's display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Phone returns the user's contact phone.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Address returns the user's home address.
func (c RegisterUserCommand) Address() kernel.Address {
	return c.address
}

// Role returns the requested marketplace role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return user.ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return user.ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return user.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPhone(phone string) error {
	if phone == "" {
		return user.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterUserCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
