package services

import (
	"sort"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
)

// Catalog resolves stock item identifiers to their current state.
type Catalog interface {
	StockItem(id uint64) (*shop.StockItem, error)
}

// OrderContent is a per-shop slice of a checkout: the lines destined for one
// shop and their subtotal priced at the moment of splitting.
type OrderContent struct {
	ShopID   uint64
	Subtotal float64
	Lines    []order.Line
}

// ContentSplitter is a domain service that partitions a customer cart into
// per-shop order contents.
//
// Business rules:
//   - Lines are grouped by the shop holding the referenced stock item
//   - Duplicate references to the same stock item within a shop are merged
//   - Subtotals are computed from current catalog prices
//   - Every cart line lands in exactly one group
//
// Results are ordered by shop identifier so that checkout produces orders
// deterministically.
type ContentSplitter struct{}

// NewContentSplitter creates a new ContentSplitter instance.
func NewContentSplitter() ContentSplitter {
	return ContentSplitter{}
}

// Split partitions the cart into per-shop order contents using current
// catalog prices and product names.
func (s ContentSplitter) Split(c *cart.Cart, catalog Catalog) ([]OrderContent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	type group struct {
		subtotal   float64
		quantities map[uint64]int
		names      map[uint64]string
		itemOrder  []uint64
	}
	groups := make(map[uint64]*group)

	for _, line := range c.Lines() {
		item, err := catalog.StockItem(line.StockItemID())
		if err != nil {
			return nil, err
		}

		g, ok := groups[item.ShopID()]
		if !ok {
			g = &group{
				quantities: make(map[uint64]int),
				names:      make(map[uint64]string),
			}
			groups[item.ShopID()] = g
		}

		if _, seen := g.quantities[item.ID()]; !seen {
			g.itemOrder = append(g.itemOrder, item.ID())
		}
		g.quantities[item.ID()] += line.Quantity()
		g.names[item.ID()] = item.Name()
		g.subtotal += item.Price() * float64(line.Quantity())
	}

	shopIDs := make([]uint64, 0, len(groups))
	for shopID := range groups {
		shopIDs = append(shopIDs, shopID)
	}
	sort.Slice(shopIDs, func(i, j int) bool { return shopIDs[i] < shopIDs[j] })

	contents := make([]OrderContent, 0, len(groups))
	for _, shopID := range shopIDs {
		g := groups[shopID]
		lines := make([]order.Line, 0, len(g.itemOrder))
		for _, itemID := range g.itemOrder {
			orderLine, err := order.NewLine(itemID, g.names[itemID], g.quantities[itemID])
			if err != nil {
				return nil, err
			}
			lines = append(lines, orderLine)
		}
		contents = append(contents, OrderContent{
			ShopID:   shopID,
			Subtotal: g.subtotal,
			Lines:    lines,
		})
	}
	return contents, nil
}
