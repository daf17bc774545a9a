package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Line is an immutable aggregation unit inside one order: a product
// reference plus the total quantity purchased. Duplicate cart picks of
// the same product are merged into a single line before the order is
// built, so a stock item appears at most once per order.
type Line struct {
	stockItemID uint64
	productName string
	quantity    int
}

// NewLine creates an order line.
func NewLine(stockItemID uint64, productName string, quantity int) (Line, error) {
	if stockItemID == 0 {
		return Line{}, errs.NewValueIsRequiredError("stock item id")
	}
	if productName == "" {
		return Line{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		stockItemID: stockItemID,
		productName: productName,
		quantity:    quantity,
	}, nil
}

// StockItemID returns the referenced stock item's id.
func (l Line) StockItemID() uint64 {
	return l.stockItemID
}

// ProductName returns the product name snapshotted at order creation.
func (l Line) ProductName() string {
	return l.productName
}

// Quantity returns the purchased quantity.
func (l Line) Quantity() int {
	return l.quantity
}
