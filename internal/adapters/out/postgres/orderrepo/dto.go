// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines are immutable snapshots written once at checkout.
type OrderDTO struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement:false"`
	OrderedAt  time.Time      `gorm:"not null"`
	CustomerID uint64         `gorm:"not null;index"`
	ShopID     uint64         `gorm:"not null;index"`
	ShipperID  *uint64        `gorm:"index"`
	Status     int            `gorm:"type:int;not null;index"`
	Location   AddressDTO     `gorm:"embedded;embeddedPrefix:location_"`
	TotalPrice float64        `gorm:"not null"`
	Lines      []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded location columns within the order table.
type AddressDTO struct {
	Line string `gorm:"type:varchar(255);not null"`
	City int    `gorm:"type:int;not null;index"`
}

// OrderLineDTO represents the database structure for persisting order lines.
// An order holds at most one line per stock item, so the pair is the key.
type OrderLineDTO struct {
	OrderID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	StockItemID uint64 `gorm:"primaryKey;autoIncrement:false"`
	ProductName string `gorm:"type:varchar(255);not null"`
	Quantity    int    `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     aggregate.ID(),
			StockItemID: line.StockItemID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		OrderedAt:  aggregate.OrderedAt(),
		CustomerID: aggregate.CustomerID(),
		ShopID:     aggregate.ShopID(),
		ShipperID:  aggregate.ShipperID(),
		Status:     int(aggregate.Status()),
		Location: AddressDTO{
			Line: aggregate.Location().Line(),
			City: int(aggregate.Location().City()),
		},
		TotalPrice: aggregate.TotalPrice(),
		Lines:      lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	location, err := kernel.NewAddress(dto.Location.Line, kernel.City(dto.Location.City))
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(lineDTO.StockItemID, lineDTO.ProductName, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.OrderedAt,
		dto.CustomerID,
		dto.ShopID,
		location,
		lines,
		dto.TotalPrice,
		order.Status(dto.Status),
		dto.ShipperID,
	)
}
