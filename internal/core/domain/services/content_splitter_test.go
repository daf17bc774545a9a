package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCatalog map[uint64]*shop.StockItem

func (m mapCatalog) StockItem(id uint64) (*shop.StockItem, error) {
	item, ok := m[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("stock item id", id)
	}
	return item, nil
}

func newItem(t *testing.T, id uint64, shopID uint64, name string, price float64) *shop.StockItem {
	t.Helper()
	item, err := shop.NewStockItem(id, name, price, 100, shopID)
	require.NoError(t, err)
	return item
}

func TestContentSplitter_Split(t *testing.T) {
	splitter := services.NewContentSplitter()

	t.Run("should split cart lines by shop", func(t *testing.T) {
		teaShopItem := newItem(t, 30_001, 40_001, "Green tea", 25_000)
		bookShopItemA := newItem(t, 30_002, 40_002, "Notebook", 15_000)
		bookShopItemB := newItem(t, 30_003, 40_002, "Pen", 5_000)
		catalog := mapCatalog{30_001: teaShopItem, 30_002: bookShopItemA, 30_003: bookShopItemB}

		c := cart.NewCart()
		require.NoError(t, c.AddLine(50_001, teaShopItem, 2))
		require.NoError(t, c.AddLine(50_002, bookShopItemA, 1))
		require.NoError(t, c.AddLine(50_003, bookShopItemB, 3))

		contents, err := splitter.Split(c, catalog)

		require.NoError(t, err)
		require.Len(t, contents, 2)

		assert.Equal(t, uint64(40_001), contents[0].ShopID)
		assert.InDelta(t, 50_000.0, contents[0].Subtotal, 0.001)
		require.Len(t, contents[0].Lines, 1)
		assert.Equal(t, "Green tea", contents[0].Lines[0].ProductName())
		assert.Equal(t, 2, contents[0].Lines[0].Quantity())

		assert.Equal(t, uint64(40_002), contents[1].ShopID)
		assert.InDelta(t, 30_000.0, contents[1].Subtotal, 0.001)
		assert.Len(t, contents[1].Lines, 2)
	})

	t.Run("should order results by shop id", func(t *testing.T) {
		itemHigh := newItem(t, 30_001, 40_009, "Green tea", 25_000)
		itemLow := newItem(t, 30_002, 40_002, "Notebook", 15_000)
		catalog := mapCatalog{30_001: itemHigh, 30_002: itemLow}

		c := cart.NewCart()
		require.NoError(t, c.AddLine(50_001, itemHigh, 1))
		require.NoError(t, c.AddLine(50_002, itemLow, 1))

		contents, err := splitter.Split(c, catalog)

		require.NoError(t, err)
		require.Len(t, contents, 2)
		assert.Equal(t, uint64(40_002), contents[0].ShopID)
		assert.Equal(t, uint64(40_009), contents[1].ShopID)
	})

	t.Run("should price subtotals from current catalog prices", func(t *testing.T) {
		item := newItem(t, 30_001, 40_001, "Green tea", 25_000)
		catalog := mapCatalog{30_001: item}

		c := cart.NewCart()
		require.NoError(t, c.AddLine(50_001, item, 2))
		require.NoError(t, item.SetPrice(30_000))

		contents, err := splitter.Split(c, catalog)

		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.InDelta(t, 60_000.0, contents[0].Subtotal, 0.001)
	})

	t.Run("should return no contents for an empty cart", func(t *testing.T) {
		contents, err := splitter.Split(cart.NewCart(), mapCatalog{})

		require.NoError(t, err)
		assert.Empty(t, contents)
	})

	t.Run("should fail when a referenced item vanished", func(t *testing.T) {
		item := newItem(t, 30_001, 40_001, "Green tea", 25_000)

		c := cart.NewCart()
		require.NoError(t, c.AddLine(50_001, item, 1))

		_, err := splitter.Split(c, mapCatalog{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unconstructed cart", func(t *testing.T) {
		_, err := splitter.Split(&cart.Cart{}, mapCatalog{})

		require.Error(t, err)
		require.ErrorIs(t, err, cart.ErrCartIsNotConstructed)
	})
}
