package sets

import (
	"bytes"
	"cmp"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// comparerIdentity lets the set algebra decide whether two sets order their
// elements the same way, which enables the merge fast path.
type comparerIdentity interface {
	sameAs(other any) bool
}

// Comparer orders the elements of an OrderedSet.
//
// Two sets use the same order if they share a Comparer, or if both use
// Ordered for the same element type.
type Comparer[T any] struct {
	compare func(a, b T) int
	natural bool
}

// Ordered returns a Comparer for the natural order of T.
func Ordered[T cmp.Ordered]() *Comparer[T] {
	return &Comparer[T]{compare: cmp.Compare[T], natural: true}
}

// CompareFunc returns a Comparer using fn, which has to implement a strict
// weak order: negative for a < b, zero for equal, positive for a > b.
func CompareFunc[T any](fn func(a, b T) int) *Comparer[T] {
	return &Comparer[T]{compare: fn}
}

// Compare compares a and b.
func (c *Comparer[T]) Compare(a, b T) int {
	return c.compare(a, b)
}

func (c *Comparer[T]) sameAs(other any) bool {
	o, ok := other.(*Comparer[T])
	return ok && (c == o || c.natural && o.natural)
}

// EqualityComparer decides equality of the elements of a HashSet. Equal
// elements must have equal hashes.
type EqualityComparer[T any] struct {
	equal func(a, b T) bool
	hash  func(T) uint64
	// name identifies the built-in comparers
	name string
}

var seed = maphash.MakeSeed()

// DefaultEquality returns an EqualityComparer using == and a hash of the
// value's memory representation.
func DefaultEquality[T comparable]() *EqualityComparer[T] {
	return &EqualityComparer[T]{
		equal: func(a, b T) bool { return a == b },
		hash:  func(v T) uint64 { return maphash.Comparable(seed, v) },
		name:  "default",
	}
}

// StringComparer returns an EqualityComparer for strings hashing with xxhash.
func StringComparer() *EqualityComparer[string] {
	return &EqualityComparer[string]{
		equal: func(a, b string) bool { return a == b },
		hash:  xxhash.Sum64String,
		name:  "xxhash",
	}
}

// BytesComparer returns an EqualityComparer for byte slices, comparing them
// by content.
func BytesComparer() *EqualityComparer[[]byte] {
	return &EqualityComparer[[]byte]{
		equal: bytes.Equal,
		hash:  xxhash.Sum64,
		name:  "xxhash",
	}
}

// EqualityFunc returns an EqualityComparer from an equality function and a
// hash function consistent with it.
func EqualityFunc[T any](equal func(a, b T) bool, hash func(T) uint64) *EqualityComparer[T] {
	return &EqualityComparer[T]{equal: equal, hash: hash}
}

// Equal reports whether a and b are equal.
func (c *EqualityComparer[T]) Equal(a, b T) bool {
	return c.equal(a, b)
}

// Hash returns the hash of v.
func (c *EqualityComparer[T]) Hash(v T) uint64 {
	return c.hash(v)
}

func (c *EqualityComparer[T]) sameAs(other any) bool {
	o, ok := other.(*EqualityComparer[T])
	return ok && (c == o || c.name != "" && c.name == o.name)
}
