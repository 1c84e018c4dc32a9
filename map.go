// Package probemap implements a resizable hash map on top of open addressing
// with linear probing, tombstone deletion and load factor driven growth.
package probemap

import (
	"fmt"
	"iter"
	"strings"
)

// Map is a hash map storing its pairs in a single slot array. Collisions are
// resolved by linear probing, deletions leave tombstones behind, and the slot
// array doubles once the share of non-empty slots would reach the load factor
// threshold. The map never shrinks and iteration order is unspecified.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with the given number of slots.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// FromMap builds a map holding the entries of src. Unless WithCapacity is
// given the capacity equals len(src), or 1 for an empty source.
func FromMap[K comparable, V any](src map[K]V, opts ...Option[K, V]) (*Map[K, V], error) {
	m, err := New[K, V](max(1, len(src)), opts...)
	if err != nil {
		return nil, err
	}

	for k, v := range src {
		if err := m.Set(k, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FromPairs is FromMap for an ordered source. Later pairs overwrite earlier
// ones with the same key.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) (*Map[K, V], error) {
	m, err := New[K, V](max(1, len(pairs)), opts...)
	if err != nil {
		return nil, err
	}

	for _, p := range pairs {
		if err := m.Set(p.Key, p.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Get returns the value of key, or a *KeyError matching ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, &KeyError{Key: key}
	}

	return v, nil
}

func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.get(key)
}

// GetOr returns the value of key, or def if the key is absent.
func (m *Map[K, V]) GetOr(key K, def V) V {
	if v, ok := m.get(key); ok {
		return v
	}

	return def
}

func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.find(key)
	return ok
}

// Set inserts or updates key. It may grow the map first.
func (m *Map[K, V]) Set(key K, value V) error {
	return m.set(key, value)
}

// Delete removes key, leaving a tombstone in its slot.
func (m *Map[K, V]) Delete(key K) error {
	if !m.delete(key) {
		return &KeyError{Key: key}
	}

	return nil
}

// Len counts the live pairs. It scans the whole slot array.
func (m *Map[K, V]) Len() int {
	return m.count(slotFull)
}

// Cap returns the number of slots.
func (m *Map[K, V]) Cap() int {
	return m.capacity
}

// LoadFactor returns the share of non-empty slots, tombstones included.
func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor()
}

// All iterates over the live pairs in slot order. Pairs set during the
// iteration may or may not be visited.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if s.state == slotFull && !yield(s.pair.Key, s.pair.Value) {
				return
			}
		}
	}
}

// Keys returns a freshly allocated slice of the keys.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns a freshly allocated slice of the values.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}

	return values
}

// Pairs returns a freshly allocated slice of the live pairs.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, m.Len())
	for k, v := range m.All() {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}

	return pairs
}

// Clone returns a map with the same pairs, capacity and options. Tombstones
// aren't carried over.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{table: *m.spawn(m.capacity)}

	// The source already fits in this capacity, so nothing can fail here.
	if _, err := c.fill(&m.table); err != nil {
		panic(err)
	}

	return c
}

// Reset marks every slot empty, keeping the capacity.
func (m *Map[K, V]) Reset() {
	m.reset()
}

// Compact rebuilds the slot array at the same capacity, dropping tombstones.
func (m *Map[K, V]) Compact() error {
	return m.compact()
}

// String renders the map as {k1: v1, k2: v2}.
func (m *Map[K, V]) String() string {
	return m.format("%v: %v")
}

// GoString renders the map as a FromMap call over a map literal.
func (m *Map[K, V]) GoString() string {
	return fmt.Sprintf("probemap.FromMap(%T%s)", map[K]V(nil), m.format("%#v: %#v"))
}

func (m *Map[K, V]) format(pairFormat string) string {
	var buf strings.Builder

	buf.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			buf.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&buf, pairFormat, k, v)
	}
	buf.WriteByte('}')

	return buf.String()
}

// Equal reports whether a and b hold the same pairs, regardless of capacity,
// slot layout or hash functions.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal, but compares values using eq.
func EqualFunc[K comparable, V any](a, b *Map[K, V], eq func(V, V) bool) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	if a.Len() != b.Len() {
		return false
	}

	for k, v := range a.All() {
		w, ok := b.get(k)
		if !ok || !eq(v, w) {
			return false
		}
	}

	return true
}
