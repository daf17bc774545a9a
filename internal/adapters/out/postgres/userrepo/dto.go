// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// Cart lines are child rows owned by the user; shippers simply have none.
type UserDTO struct {
	ID          uint64        `gorm:"primaryKey;autoIncrement:false"`
	Username    string        `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password    string        `gorm:"type:varchar(255);not null"`
	Name        string        `gorm:"type:varchar(255);not null"`
	Phone       string        `gorm:"type:varchar(32);not null"`
	Address     AddressDTO    `gorm:"embedded;embeddedPrefix:address_"`
	Balance     float64       `gorm:"not null"`
	Role        int           `gorm:"type:int;not null;index"`
	OwnedShopID *uint64       `gorm:"index"`
	CartLines   []CartLineDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents the embedded address columns within the user table.
type AddressDTO struct {
	Line string `gorm:"type:varchar(255);not null"`
	City int    `gorm:"type:int;not null;index"`
}

// CartLineDTO represents the database structure for persisting cart lines.
// Links to the owning user via foreign key.
type CartLineDTO struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement:false"`
	UserID      uint64 `gorm:"not null;index"`
	StockItemID uint64 `gorm:"not null"`
	ShopID      uint64 `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		ID:       aggregate.ID(),
		Username: aggregate.Username(),
		Password: aggregate.Password(),
		Name:     aggregate.Name(),
		Phone:    aggregate.Phone(),
		Address: AddressDTO{
			Line: aggregate.Address().Line(),
			City: int(aggregate.Address().City()),
		},
		Balance:     aggregate.Balance(),
		Role:        int(aggregate.Role()),
		OwnedShopID: aggregate.OwnedShopID(),
	}

	if aggregate.Role() == user.Customer {
		if customerCart, err := aggregate.Cart(); err == nil {
			for _, line := range customerCart.Lines() {
				dto.CartLines = append(dto.CartLines, CartLineDTO{
					ID:          line.ID(),
					UserID:      aggregate.ID(),
					StockItemID: line.StockItemID(),
					ShopID:      line.ShopID(),
					Quantity:    line.Quantity(),
				})
			}
		}
	}
	return dto
}

// toDomain converts a database DTO to a user domain aggregate.
// Reconstructs the complete aggregate including the cart using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	address, err := kernel.NewAddress(dto.Address.Line, kernel.City(dto.Address.City))
	if err != nil {
		return nil, err
	}

	var restoredCart *cart.Cart
	if user.Role(dto.Role) == user.Customer {
		lines := make([]*cart.Line, 0, len(dto.CartLines))
		for _, lineDTO := range dto.CartLines {
			line, lineErr := cart.RestoreLine(lineDTO.ID, lineDTO.StockItemID, lineDTO.ShopID, lineDTO.Quantity)
			if lineErr != nil {
				return nil, lineErr
			}
			lines = append(lines, line)
		}
		restoredCart, err = cart.RestoreCart(lines)
		if err != nil {
			return nil, err
		}
	}

	return user.RestoreUser(
		dto.ID,
		dto.Username,
		dto.Password,
		dto.Name,
		dto.Phone,
		address,
		user.Role(dto.Role),
		dto.Balance,
		restoredCart,
		dto.OwnedShopID,
	)
}
