package probemap

import (
	"fmt"
	"iter"
	"strings"
)

// Set is a set of keys backed by a Map with empty values.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) (*Set[K], error) {
	m, err := New[K, struct{}](capacity, opts...)
	if err != nil {
		return nil, err
	}

	return &Set[K]{m: m}, nil
}

// Puts a key in the set.
func (s *Set[K]) Add(key K) error {
	return s.m.Set(key, struct{}{})
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.m.Contains(key)
}

// Removes a key, failing with a *KeyError if it isn't in the set.
func (s *Set[K]) Remove(key K) error {
	return s.m.Delete(key)
}

func (s *Set[K]) Len() int {
	return s.m.Len()
}

func (s *Set[K]) Cap() int {
	return s.m.Cap()
}

// Members returns a freshly allocated slice of the keys.
func (s *Set[K]) Members() []K {
	return s.m.Keys()
}

func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Empties the set, keeping its capacity.
func (s *Set[K]) Reset() {
	s.m.Reset()
}

func (s *Set[K]) Stats() Stats {
	return s.m.Stats()
}

// String renders the set as {k1, k2}.
func (s *Set[K]) String() string {
	var buf strings.Builder

	buf.WriteByte('{')
	first := true
	for k := range s.All() {
		if !first {
			buf.WriteString(", ")
		}
		first = false

		fmt.Fprintf(&buf, "%v", k)
	}
	buf.WriteByte('}')

	return buf.String()
}
