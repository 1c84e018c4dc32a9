package probemap

import (
	"hash/maphash"
	"log/slog"
)

// DefaultLoadFactor is the load factor threshold of a map created without
// WithLoadFactor.
const DefaultLoadFactor = 0.6

type table[K comparable, V any] struct {
	slots []slot[K, V]

	capacity  int
	threshold float64
	// Number of non-empty slots, tombstones included. Deletes leave it as is,
	// only reset and rebuilds lower it.
	used    int
	resizes int

	hashFunc HashFunc[K]
	logger   *slog.Logger
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Sets the load factor threshold at which the table doubles its capacity.
func WithLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.threshold = f
	}
}

// Overrides the initial capacity. Mostly useful with FromMap and FromPairs,
// which otherwise size the table to the source.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.capacity = capacity
	}
}

// Sets the logger receiving resize and compaction events at debug level.
func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = l
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) error {
	t.capacity = capacity
	t.threshold = DefaultLoadFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.capacity < 1 {
		return errInvalidCapacity(t.capacity)
	}

	if !(t.threshold > 0 && t.threshold <= 1) {
		return errInvalidLoadFactor(t.threshold)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.logger == nil {
		t.logger = slog.New(slog.DiscardHandler)
	}

	t.slots = make([]slot[K, V], t.capacity)

	return nil
}

// spawn returns an empty table of the given capacity sharing the
// configuration of t.
func (t *table[K, V]) spawn(capacity int) *table[K, V] {
	return &table[K, V]{
		slots:     make([]slot[K, V], capacity),
		capacity:  capacity,
		threshold: t.threshold,
		hashFunc:  t.hashFunc,
		logger:    t.logger,
	}
}

func (t *table[K, V]) home(key K) int {
	return indexOf(t.hashFunc(key), t.capacity)
}

func (t *table[K, V]) find(key K) (int, bool) {
	for idx, s := range probe(t.slots, t.home(key)) {
		switch s.state {
		case slotEmpty:
			return 0, false
		case slotFull:
			if s.pair.Key == key {
				return idx, true
			}
		}
	}

	return 0, false
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx, ok := t.find(key)
	if !ok {
		var zero V
		return zero, false
	}

	return t.slots[idx].pair.Value, true
}

func (t *table[K, V]) set(key K, value V) error {
	reuse := -1

	for idx, s := range probe(t.slots, t.home(key)) {
		switch s.state {
		case slotDeleted:
			// Tombstones never end the probe, the key may live further on.
			if reuse < 0 {
				reuse = idx
			}

		case slotFull:
			if s.pair.Key == key {
				s.pair = Pair[K, V]{Key: key, Value: value}
				return nil
			}

		case slotEmpty:
			// The write lands here even if a tombstone was passed on the way.
			if exceedsLoadFactor(t.used+1, t.capacity, t.threshold) {
				if err := t.grow(); err != nil {
					return err
				}

				return t.set(key, value)
			}

			*s = slot[K, V]{state: slotFull, pair: Pair[K, V]{Key: key, Value: value}}
			t.used++

			return nil
		}
	}

	if reuse >= 0 {
		t.slots[reuse] = slot[K, V]{state: slotFull, pair: Pair[K, V]{Key: key, Value: value}}
		return nil
	}

	return errTableFull(t.capacity)
}

func (t *table[K, V]) delete(key K) bool {
	idx, ok := t.find(key)
	if !ok {
		return false
	}

	// Mark as deleted to preserve the probe chain
	t.slots[idx] = slot[K, V]{state: slotDeleted}

	return true
}

// fill reinserts every live pair of src into t and returns how many there were.
func (t *table[K, V]) fill(src *table[K, V]) (int, error) {
	n := 0
	for i := range src.slots {
		s := &src.slots[i]
		if s.state != slotFull {
			continue
		}

		if err := t.set(s.pair.Key, s.pair.Value); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

// rebuild replaces the slot array of t with a fresh one of the given capacity
// holding the same live pairs. Tombstones are dropped.
func (t *table[K, V]) rebuild(capacity int) (int, error) {
	next := t.spawn(capacity)

	live, err := next.fill(t)
	if err != nil {
		return 0, err
	}

	t.slots = next.slots
	t.capacity = next.capacity
	t.used = next.used
	t.resizes += next.resizes

	return live, nil
}

func (t *table[K, V]) grow() error {
	from := t.capacity

	live, err := t.rebuild(grownCapacity(from))
	if err != nil {
		return err
	}
	t.resizes++

	t.logger.Debug("probemap: table grown",
		slog.Int("from", from),
		slog.Int("to", t.capacity),
		slog.Int("live", live),
	)

	return nil
}

func (t *table[K, V]) compact() error {
	before := t.used

	live, err := t.rebuild(t.capacity)
	if err != nil {
		return err
	}

	t.logger.Debug("probemap: table compacted",
		slog.Int("capacity", t.capacity),
		slog.Int("live", live),
		slog.Int("dropped", before-live),
	)

	return nil
}

func (t *table[K, V]) reset() {
	clear(t.slots)
	t.used = 0
}

func (t *table[K, V]) count(state slotState) int {
	n := 0
	for i := range t.slots {
		if t.slots[i].state == state {
			n++
		}
	}

	return n
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.used) / float64(t.capacity)
}
