package sets

import (
	"iter"
	"slices"
)

// Collection is anything which can produce its elements as a sequence. Sets,
// sorted lists and btree lists are collections; Slice and Seq adapt plain
// slices and iterators.
type Collection[T any] interface {
	Values() iter.Seq[T]
}

// Slice adapts a slice to a Collection.
type Slice[T any] []T

// Values returns the elements of s in order.
func (s Slice[T]) Values() iter.Seq[T] {
	return slices.Values(s)
}

// Seq adapts an iterator to a Collection.
type Seq[T any] iter.Seq[T]

// Values returns s.
func (s Seq[T]) Values() iter.Seq[T] {
	return iter.Seq[T](s)
}

func hasAny[T any](c Collection[T]) bool {
	for range c.Values() {
		return true
	}
	return false
}
