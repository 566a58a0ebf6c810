package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index or span.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrInvalidArgument signals a missing or malformed argument, e.g. a nil
	// comparison function.
	ErrInvalidArgument = errors.New("btree: invalid argument")
	// ErrStaleEnumerator signals that a list has been structurally modified
	// while an enumerator was traversing it.
	ErrStaleEnumerator = errors.New("btree: list modified during enumeration")
	// ErrInvariant signals a violated structural tree invariant.
	ErrInvariant = errors.New("btree: invariant violated")
)
