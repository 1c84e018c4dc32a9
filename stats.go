package probemap

type Stats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	LoadFactor              float64
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32
	Resizes                 int
}

// Stats scans the slot array and reports its occupancy.
func (m *Map[K, V]) Stats() Stats {
	st := Stats{
		Size:       m.count(slotFull),
		Capacity:   m.capacity,
		Tombstones: m.count(slotDeleted),
		LoadFactor: m.loadFactor(),
		Resizes:    m.resizes,
	}

	st.TombstonesCapacityRatio = float32(st.Tombstones) / float32(st.Capacity)
	if st.Size > 0 {
		st.TombstonesSizeRatio = float32(st.Tombstones) / float32(st.Size)
	}

	return st
}
