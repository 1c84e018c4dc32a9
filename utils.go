package probemap

// Returns the capacity a full table grows to.
func grownCapacity(capacity int) int {
	return capacity * 2
}

func exceedsLoadFactor(used, capacity int, threshold float64) bool {
	return float64(used)/float64(capacity) >= threshold
}

// CapacityFor returns the smallest capacity that holds n keys without growing
// under the given load factor threshold. An invalid threshold is replaced by
// DefaultLoadFactor.
func CapacityFor(n int, threshold float64) int {
	if !(threshold > 0 && threshold <= 1) {
		threshold = DefaultLoadFactor
	}

	capacity := max(1, int(float64(n)/threshold))
	for n > 0 && exceedsLoadFactor(n, capacity, threshold) {
		capacity++
	}

	return capacity
}
