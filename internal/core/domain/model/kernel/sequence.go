package kernel

import "sync/atomic"

// ID bands: each entity type draws its identifiers from a sequence seeded
// into its own numeric range, purely so printed ids are visually
// distinguishable. The banding has no semantic role - ids are opaque
// unique integers scoped per entity type and must never be used for
// routing or lookup decisions.
const (
	UserIDBand      uint64 = 0
	OrderIDBand     uint64 = 10_000
	StockItemIDBand uint64 = 30_000
	ShopIDBand      uint64 = 40_000
	CartLineIDBand  uint64 = 50_000
)

// IDGenerator produces unique identifiers for one entity type.
// The generator is injected into the handlers that create entities,
// avoiding hidden static counters.
type IDGenerator interface {
	Next() uint64
}

// Sequence is a monotonically increasing IDGenerator. It is safe for
// concurrent use: the counter is atomic, so the shared id state needs no
// further serialization if concurrent callers are introduced.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence creates a sequence whose first Next() returns band+1.
//
// Example:
//
//	orders := kernel.NewSequence(kernel.OrderIDBand)
//	id := orders.Next() // 10001
func NewSequence(band uint64) *Sequence {
	s := &Sequence{}
	s.last.Store(band)
	return s
}

// Next returns the next identifier in the sequence.
func (s *Sequence) Next() uint64 {
	return s.last.Add(1)
}

// Raise lifts the sequence floor to at least n. It is used when restoring
// persisted state so freshly generated ids never collide with stored ones.
// Raising to a value below the current floor is a no-op.
func (s *Sequence) Raise(n uint64) {
	for {
		cur := s.last.Load()
		if n <= cur {
			return
		}
		if s.last.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Sequences bundles one id sequence per entity type. A single Sequences
// value is owned by the composition root and handed to the command
// handlers that create entities.
type Sequences struct {
	Users      *Sequence
	Orders     *Sequence
	StockItems *Sequence
	Shops      *Sequence
	CartLines  *Sequence
}

// NewSequences creates the per-entity sequences seeded into their bands.
func NewSequences() *Sequences {
	return &Sequences{
		Users:      NewSequence(UserIDBand),
		Orders:     NewSequence(OrderIDBand),
		StockItems: NewSequence(StockItemIDBand),
		Shops:      NewSequence(ShopIDBand),
		CartLines:  NewSequence(CartLineIDBand),
	}
}
