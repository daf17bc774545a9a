// Package shoprepo provides data transfer objects and mapping functions for shop persistence.
// This package implements the repository pattern for the shop domain aggregate, handling
// the conversion between domain entities and database representations.
package shoprepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
)

// ShopDTO represents the database structure for persisting shop aggregates.
// Stock items are child rows owned by the shop.
type ShopDTO struct {
	ID      uint64         `gorm:"primaryKey;autoIncrement:false"`
	OwnerID uint64         `gorm:"not null;index"`
	Name    string         `gorm:"type:varchar(255);not null;index"`
	Address AddressDTO     `gorm:"embedded;embeddedPrefix:address_"`
	Revenue float64        `gorm:"not null"`
	Stock   []StockItemDTO `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

// AddressDTO represents the embedded address columns within the shop table.
type AddressDTO struct {
	Line string `gorm:"type:varchar(255);not null"`
	City int    `gorm:"type:int;not null"`
}

// StockItemDTO represents the database structure for persisting stock items.
// Links to the owning shop via foreign key.
type StockItemDTO struct {
	ID       uint64  `gorm:"primaryKey;autoIncrement:false"`
	ShopID   uint64  `gorm:"not null;index"`
	Name     string  `gorm:"type:varchar(255);not null"`
	Price    float64 `gorm:"not null"`
	Quantity int     `gorm:"not null"`
}

// TableName specifies the database table name for stock item entities.
func (StockItemDTO) TableName() string {
	return "stock_items"
}

// fromDomain converts a shop domain aggregate to its database representation.
func fromDomain(aggregate *shop.Shop) ShopDTO {
	stock := make([]StockItemDTO, 0, len(aggregate.Stock()))
	for _, item := range aggregate.Stock() {
		stock = append(stock, StockItemDTO{
			ID:       item.ID(),
			ShopID:   aggregate.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}

	return ShopDTO{
		ID:      aggregate.ID(),
		OwnerID: aggregate.OwnerID(),
		Name:    aggregate.Name(),
		Address: AddressDTO{
			Line: aggregate.Address().Line(),
			City: int(aggregate.Address().City()),
		},
		Revenue: aggregate.Revenue(),
		Stock:   stock,
	}
}

// toDomain converts a database DTO to a shop domain aggregate.
// Reconstructs the complete aggregate including all stock items using RestoreShop.
func toDomain(dto ShopDTO) (*shop.Shop, error) {
	address, err := kernel.NewAddress(dto.Address.Line, kernel.City(dto.Address.City))
	if err != nil {
		return nil, err
	}

	stock := make([]*shop.StockItem, 0, len(dto.Stock))
	for _, itemDTO := range dto.Stock {
		item, itemErr := shop.RestoreStockItem(itemDTO.ID, itemDTO.Name, itemDTO.Price, itemDTO.Quantity, itemDTO.ShopID)
		if itemErr != nil {
			return nil, itemErr
		}
		stock = append(stock, item)
	}

	return shop.RestoreShop(dto.ID, dto.OwnerID, dto.Name, address, stock, dto.Revenue)
}
