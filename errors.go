package probemap

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument is returned by constructors for a capacity below 1 or
	// a load factor outside of (0, 1].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrKeyNotFound is matched by every *KeyError.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTableFull means a probe visited every slot without finding room.
	// Growth always runs before an insert could fill the table, so seeing this
	// error is a bug in the resize policy. It's wrapped as an assertion failure.
	ErrTableFull = errors.New("table is full")
)

// KeyError reports a lookup or deletion of an absent key.
type KeyError struct {
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %#v", e.Key)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrKeyNotFound
}

func errInvalidCapacity(capacity int) error {
	return errors.Wrapf(ErrInvalidArgument, "capacity must be at least 1, got %d", capacity)
}

func errInvalidLoadFactor(f float64) error {
	return errors.Wrapf(ErrInvalidArgument, "load factor must be in (0, 1], got %v", f)
}

func errTableFull(capacity int) error {
	return errors.WithAssertionFailure(
		errors.Wrapf(ErrTableFull, "probed all %d slots", capacity),
	)
}
