package shop_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("3 Le Loi", kernel.DaNang)
	require.NoError(t, err)
	return addr
}

func TestNewShop(t *testing.T) {
	t.Run("should create empty shop", func(t *testing.T) {
		s, err := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, uint64(40_001), s.ID())
		assert.Equal(t, uint64(1), s.OwnerID())
		assert.Equal(t, "Tea Corner", s.Name())
		assert.Empty(t, s.Stock())
		assert.Zero(t, s.Revenue())
	})

	t.Run("should fail with zero id", func(t *testing.T) {
		_, err := shop.NewShop(0, 1, "Tea Corner", testAddress(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shop id")
	})

	t.Run("should fail with zero owner id", func(t *testing.T) {
		_, err := shop.NewShop(40_001, 0, "Tea Corner", testAddress(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "owner id")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := shop.NewShop(40_001, 1, "", testAddress(t))

		require.Error(t, err)
		require.ErrorIs(t, err, shop.ErrShopNameIsRequired)
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		var addr kernel.Address

		_, err := shop.NewShop(40_001, 1, "Tea Corner", addr)

		require.Error(t, err)
	})
}

func TestRestoreShop(t *testing.T) {
	t.Run("should restore stock and revenue", func(t *testing.T) {
		item, _ := shop.NewStockItem(30_001, "Green tea", 25_000, 5, 40_001)

		s, err := shop.RestoreShop(40_001, 1, "Tea Corner", testAddress(t), []*shop.StockItem{item}, 120_000)

		require.NoError(t, err)
		assert.Len(t, s.Stock(), 1)
		assert.InDelta(t, 120_000.0, s.Revenue(), 0.001)
	})

	t.Run("should reject invalid stock items", func(t *testing.T) {
		_, err := shop.RestoreShop(40_001, 1, "Tea Corner", testAddress(t), []*shop.StockItem{{}}, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, shop.ErrStockItemIsNotConstructed)
	})
}

func TestShop_AddItem(t *testing.T) {
	t.Run("should add item to stock", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))

		item, err := s.AddItem(30_001, "Green tea", 25_000, 10)

		require.NoError(t, err)
		assert.Equal(t, uint64(40_001), item.ShopID())
		assert.Len(t, s.Stock(), 1)

		found, ok := s.StockItem(30_001)
		require.True(t, ok)
		assert.Equal(t, item, found)
	})

	t.Run("should reject invalid item data", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))

		_, err := s.AddItem(30_001, "", -1, 10)

		require.Error(t, err)
		assert.Empty(t, s.Stock())
	})
}

func TestShop_RemoveItem(t *testing.T) {
	t.Run("should remove existing item", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))
		_, _ = s.AddItem(30_001, "Green tea", 25_000, 10)
		_, _ = s.AddItem(30_002, "Black tea", 28_000, 4)

		removed := s.RemoveItem(30_001)

		assert.True(t, removed)
		assert.Len(t, s.Stock(), 1)
		_, ok := s.StockItem(30_001)
		assert.False(t, ok)
	})

	t.Run("should report missing item", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))

		assert.False(t, s.RemoveItem(30_001))
	})
}

func TestShop_Revenue(t *testing.T) {
	t.Run("should accumulate revenue", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))

		s.IncreaseRevenue(91_000)
		s.IncreaseRevenue(45_500)

		assert.InDelta(t, 136_500.0, s.Revenue(), 0.001)
	})

	t.Run("should clamp SetRevenue at zero", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))
		s.IncreaseRevenue(500)

		s.SetRevenue(-100)

		assert.Zero(t, s.Revenue())
	})
}

func TestShop_Payout(t *testing.T) {
	t.Run("should withdraw up to the available revenue", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))
		s.IncreaseRevenue(100_000)

		paid := s.Payout(60_000)

		assert.InDelta(t, 60_000.0, paid, 0.001)
		assert.InDelta(t, 40_000.0, s.Revenue(), 0.001)
	})

	t.Run("should clamp overdrawn payouts", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))
		s.IncreaseRevenue(30_000)

		paid := s.Payout(100_000)

		assert.InDelta(t, 30_000.0, paid, 0.001)
		assert.Zero(t, s.Revenue())
	})

	t.Run("should treat negative amounts as zero", func(t *testing.T) {
		s, _ := shop.NewShop(40_001, 1, "Tea Corner", testAddress(t))
		s.IncreaseRevenue(30_000)

		paid := s.Payout(-5_000)

		assert.Zero(t, paid)
		assert.InDelta(t, 30_000.0, s.Revenue(), 0.001)
	})
}

func TestShop_Validate(t *testing.T) {
	t.Run("should reject nil shop", func(t *testing.T) {
		var s *shop.Shop

		require.ErrorIs(t, s.Validate(), shop.ErrShopIsNotConstructed)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		s := &shop.Shop{}

		require.ErrorIs(t, s.Validate(), shop.ErrShopIsNotConstructed)
	})
}
