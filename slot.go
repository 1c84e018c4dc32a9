package probemap

import "iter"

type slotState uint8

const (
	// Never occupied since the slot array was allocated.
	slotEmpty slotState = iota
	// Tombstone. Left behind by a delete so probes for colliding keys keep
	// going past it.
	slotDeleted
	slotFull
)

// Pair is a key and its value as stored in a slot.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type slot[K comparable, V any] struct {
	state slotState
	pair  Pair[K, V]
}

// probe yields every slot index exactly once, starting at the home index of
// the key and wrapping around the end of the slot array.
func probe[K comparable, V any](slots []slot[K, V], home int) iter.Seq2[int, *slot[K, V]] {
	return func(yield func(int, *slot[K, V]) bool) {
		n := len(slots)
		for p, idx := 0, home; p < n; p++ {
			if !yield(idx, &slots[idx]) {
				return
			}

			if idx++; idx == n {
				idx = 0
			}
		}
	}
}
