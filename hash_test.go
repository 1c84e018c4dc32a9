package probemap

import (
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHash(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestMakeDefaultHash_Interface(t *testing.T) {
	f := MakeDefaultHashFunc[any](maphash.MakeSeed())

	require.Equal(t, f("hola"), f("hola"))
	require.Equal(t, f(98.6), f(98.6))
	require.Equal(t, f(false), f(false))
}

func TestXXHashString(t *testing.T) {
	type name string

	require.Equal(t, xxhash.Sum64String("foo"), XXHashString("foo"))
	require.Equal(t, xxhash.Sum64String("foo"), XXHashString(name("foo")))
}

func TestIndexOf(t *testing.T) {
	tests := []struct {
		name     string
		hash     uint64
		capacity int
		want     int
	}{
		{
			name:     "Zero hash",
			hash:     0,
			capacity: 100,
			want:     0,
		},
		{
			name:     "Below capacity",
			hash:     24,
			capacity: 100,
			want:     24,
		},
		{
			name:     "Wraps",
			hash:     134,
			capacity: 100,
			want:     34,
		},
		{
			name:     "Single slot",
			hash:     0xABCD1234567890EF,
			capacity: 1,
			want:     0,
		},
		{
			name:     "Max uint64",
			hash:     0xFFFFFFFFFFFFFFFF,
			capacity: 10,
			want:     5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, indexOf(tt.hash, tt.capacity))
		})
	}
}
