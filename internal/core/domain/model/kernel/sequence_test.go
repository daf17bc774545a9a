package kernel_test

import (
	"sync"
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_Next(t *testing.T) {
	t.Run("should start one above the band", func(t *testing.T) {
		seq := kernel.NewSequence(kernel.OrderIDBand)

		assert.Equal(t, uint64(10_001), seq.Next())
		assert.Equal(t, uint64(10_002), seq.Next())
	})

	t.Run("should start at one for the zero band", func(t *testing.T) {
		seq := kernel.NewSequence(kernel.UserIDBand)

		assert.Equal(t, uint64(1), seq.Next())
	})

	t.Run("should produce unique ids under concurrent use", func(t *testing.T) {
		seq := kernel.NewSequence(0)

		const workers = 8
		const perWorker = 100

		var mu sync.Mutex
		seen := make(map[uint64]bool)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					id := seq.Next()
					mu.Lock()
					seen[id] = true
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
	})
}

func TestSequence_Raise(t *testing.T) {
	t.Run("should lift the floor above persisted ids", func(t *testing.T) {
		seq := kernel.NewSequence(kernel.ShopIDBand)

		seq.Raise(40_007)

		assert.Equal(t, uint64(40_008), seq.Next())
	})

	t.Run("should ignore a raise below the current floor", func(t *testing.T) {
		seq := kernel.NewSequence(kernel.ShopIDBand)
		seq.Raise(40_100)

		seq.Raise(40_002)

		assert.Equal(t, uint64(40_101), seq.Next())
	})
}

func TestNewSequences(t *testing.T) {
	t.Run("should seed every sequence into its own band", func(t *testing.T) {
		sequences := kernel.NewSequences()

		require.NotNil(t, sequences)
		assert.Equal(t, uint64(1), sequences.Users.Next())
		assert.Equal(t, uint64(10_001), sequences.Orders.Next())
		assert.Equal(t, uint64(30_001), sequences.StockItems.Next())
		assert.Equal(t, uint64(40_001), sequences.Shops.Next())
		assert.Equal(t, uint64(50_001), sequences.CartLines.Next())
	})
}
