package sets

import (
	"fmt"
	"slices"

	"github.com/npillmayer/bplist/btree"
	"github.com/npillmayer/bplist/sortedlist"
)

// OrderedSet is a set keeping its elements sorted by a Comparer.
type OrderedSet[T any] struct {
	setCore[T, T]
	order *Comparer[T]
}

// NewOrdered creates an empty set ordered by c.
func NewOrdered[T any](c *Comparer[T], cfg btree.Config) (*OrderedSet[T], error) {
	if c == nil || c.compare == nil {
		return nil, fmt.Errorf("%w: comparer is nil", btree.ErrInvalidArgument)
	}
	items, err := sortedlist.New(c.compare, cfg)
	if err != nil {
		return nil, err
	}
	s := &OrderedSet[T]{order: c}
	s.setCore = setCore[T, T]{
		items:    items,
		comparer: c,
		entry:    identity[T],
		value:    identity[T],
	}
	return s, nil
}

// OrderedFrom creates a set ordered by c holding the elements of values.
// Of elements comparing equal, the first one is kept.
func OrderedFrom[T any](c *Comparer[T], cfg btree.Config, values Collection[T]) (*OrderedSet[T], error) {
	s, err := NewOrdered(c, cfg)
	if err != nil {
		return nil, err
	}
	if values == nil {
		return s, nil
	}
	elems := slices.Collect(values.Values())
	slices.SortStableFunc(elems, c.compare)
	elems = slices.CompactFunc(elems, func(a, b T) bool { return c.compare(a, b) == 0 })
	s.items.ReplaceAll(elems)
	return s, nil
}

func identity[T any](v T) T {
	return v
}

// Comparer returns the comparer ordering the set.
func (s *OrderedSet[T]) Comparer() *Comparer[T] {
	return s.order
}

// Min returns the smallest element, if any.
func (s *OrderedSet[T]) Min() (T, bool) {
	return s.items.First()
}

// Max returns the largest element, if any.
func (s *OrderedSet[T]) Max() (T, bool) {
	return s.items.Last()
}

// Clone returns a copy of the set using the same comparer.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	c := &OrderedSet[T]{setCore: s.setCore, order: s.order}
	c.items = s.items.Clone()
	return c
}
