package shop_test

import (
	"testing"

	"marketplace/internal/core/domain/model/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockItem(t *testing.T) {
	t.Run("should create valid stock item", func(t *testing.T) {
		item, err := shop.NewStockItem(30_001, "Green tea", 25_000, 10, 40_001)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, uint64(30_001), item.ID())
		assert.Equal(t, "Green tea", item.Name())
		assert.InDelta(t, 25_000.0, item.Price(), 0.001)
		assert.Equal(t, 10, item.Quantity())
		assert.Equal(t, uint64(40_001), item.ShopID())
	})

	t.Run("should allow zero quantity", func(t *testing.T) {
		item, err := shop.NewStockItem(30_001, "Green tea", 25_000, 0, 40_001)

		require.NoError(t, err)
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		_, err := shop.NewStockItem(0, "Green tea", 25_000, 10, 40_001)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "stock item id")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := shop.NewStockItem(30_001, "", 25_000, 10, 40_001)

		require.Error(t, err)
		require.ErrorIs(t, err, shop.ErrProductNameIsRequired)
	})

	t.Run("should fail with non-positive price", func(t *testing.T) {
		_, err := shop.NewStockItem(30_001, "Green tea", 0, 10, 40_001)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price is invalid")

		_, err = shop.NewStockItem(30_001, "Green tea", -5, 10, 40_001)
		require.Error(t, err)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := shop.NewStockItem(30_001, "Green tea", 25_000, -1, 40_001)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("should fail with zero shop id", func(t *testing.T) {
		_, err := shop.NewStockItem(30_001, "Green tea", 25_000, 10, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shop id")
	})
}

func TestStockItem_Decrement(t *testing.T) {
	t.Run("should reduce the available quantity", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 10, 40_001)

		err := item.Decrement(4)

		require.NoError(t, err)
		assert.Equal(t, 6, item.Quantity())
	})

	t.Run("should allow taking the last unit", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 3, 40_001)

		require.NoError(t, item.Decrement(3))
		assert.Equal(t, 0, item.Quantity())
	})

	t.Run("should refuse to oversell", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 3, 40_001)

		err := item.Decrement(4)

		require.Error(t, err)
		require.ErrorIs(t, err, shop.ErrNotEnoughStock)
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 3, 40_001)

		require.Error(t, item.Decrement(0))
		require.Error(t, item.Decrement(-2))
		assert.Equal(t, 3, item.Quantity())
	})
}

func TestStockItem_Replenish(t *testing.T) {
	t.Run("should add units back", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 3, 40_001)

		require.NoError(t, item.Replenish(5))
		assert.Equal(t, 8, item.Quantity())
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 3, 40_001)

		require.Error(t, item.Replenish(0))
		require.Error(t, item.Replenish(-1))
	})
}

func TestStockItem_SetPrice(t *testing.T) {
	t.Run("should re-price the item", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 3, 40_001)

		require.NoError(t, item.SetPrice(30_000))
		assert.InDelta(t, 30_000.0, item.Price(), 0.001)
	})

	t.Run("should reject non-positive prices", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 3, 40_001)

		require.Error(t, item.SetPrice(0))
		assert.InDelta(t, 25_000.0, item.Price(), 0.001)
	})
}

func TestStockItem_Validate(t *testing.T) {
	t.Run("should reject nil item", func(t *testing.T) {
		var item *shop.StockItem

		require.ErrorIs(t, item.Validate(), shop.ErrStockItemIsNotConstructed)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		item := &shop.StockItem{}

		require.ErrorIs(t, item.Validate(), shop.ErrStockItemIsNotConstructed)
	})
}
